// Package css holds the class registry that deduplicates computed styles
// into a shared stylesheet.
//
// A class name has the form "{short}-{ordinal}", where short is the
// property's short code (see ShortCode) and the ordinal is handed out once
// per distinct (short code, value) pair by a Namer. Equal declarations on
// any number of nodes therefore share one rule.
package css
