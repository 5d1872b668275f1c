// Package reactive is the reference implementation of the reactive value
// contract consumed by the element runtime.
//
// A value exposes Get for its current literal and Subscribe for change
// notification. Subscribe returns a Subscription handle; releasing the
// handle is the only way to stop notifications, which lets owners
// aggregate handles and release them on teardown.
//
//	count := reactive.NewCell(0)
//	label := reactive.NewFormula(func() string {
//	    return fmt.Sprintf("%d items", count.Get())
//	}, count)
//	sub := label.Subscribe(func() { fmt.Println(label.Get()) })
//	count.Set(3) // prints "3 items"
//	sub.Unsubscribe()
//
// Notification is synchronous and depth-first: Set returns only after every
// subscriber (and every subscriber of a dependent formula) has run.
package reactive
