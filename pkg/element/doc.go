// Package element is the facade generated programs drive to build a page.
//
// A Runtime binds one host document to a class registry for a render pass.
// Nodes are created under a Container (the body, another Node or a mount)
// and style themselves through AttachCSS, which collapses equal
// declarations into shared classes. Reactive properties bind through
// SetProperty and SetDynamicProperty; every subscription a node creates is
// released by Destroy.
//
// Conditional and ForLoop are the two mounts that rebuild part of the tree
// in response to reactive changes.
package element
