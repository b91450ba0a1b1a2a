// Package editor holds the state of an interactive gradient editing session.
//
// All editing goes through [Action] values. An action's Apply method is a
// pure function from one [State] to the next: it never mutates its input
// and never draws random numbers or allocates identities. A [Store] owns
// the current state, fills any identities or random values an action needs
// before applying it, and notifies an optional change callback.
//
// # Usage
//
//	store := editor.NewStore(editor.NewState(gradient.Default()))
//	store.Dispatch(editor.SetKind{Kind: gradient.KindRadial})
//	store.Dispatch(editor.AddStop{})
//	css := gradient.Compose(store.State().Spec)
//
// Pointer drags produce updates faster than a preview can redraw. A
// [Coalescer] keeps only the most recent pending update so the preview
// applies one move per frame.
package editor
