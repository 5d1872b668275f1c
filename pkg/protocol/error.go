package protocol

// ErrorMessage reports a failed page render to dev clients.
type ErrorMessage struct {
	Code    string // error code, e.g. "E040"
	Page    string // page that failed
	Message string // human-readable message
}

// Error implements the error interface.
func (em *ErrorMessage) Error() string {
	msg := em.Message
	if em.Code != "" {
		msg = em.Code + ": " + msg
	}
	if em.Page != "" {
		msg = em.Page + ": " + msg
	}
	return msg
}

// EncodeErrorMessage encodes an ErrorMessage.
func EncodeErrorMessage(em *ErrorMessage) []byte {
	e := NewEncoder()
	e.WriteString(em.Code)
	e.WriteString(em.Page)
	e.WriteString(em.Message)
	return e.Bytes()
}

// DecodeErrorMessage decodes an ErrorMessage.
func DecodeErrorMessage(data []byte) (*ErrorMessage, error) {
	d := NewDecoder(data)
	em := &ErrorMessage{}
	var err error
	if em.Code, err = d.ReadString(); err != nil {
		return nil, err
	}
	if em.Page, err = d.ReadString(); err != nil {
		return nil, err
	}
	if em.Message, err = d.ReadString(); err != nil {
		return nil, err
	}
	return em, nil
}
