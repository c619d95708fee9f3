// Package deck implements a stack of swipeable cards.
//
// The active card follows a pointer drag through a gesture recognizer. On
// release the horizontal displacement decides the outcome: beyond the
// threshold the card is thrown off-screen and the deck advances, otherwise it
// springs back to rest. Plan describes what a host should draw for the
// current state; the host owns the frame loop and calls Step once per frame.
//
// A Deck is single-owner: all methods must be called from the goroutine that
// runs the frame loop.
package deck
