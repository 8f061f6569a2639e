// Package vending models a coin-operated drink machine.
//
// A machine starts Ready. Inserting a coin moves it to Dispensing; further
// coins are refused while it dispenses and the state is left untouched.
// A coin offered with a cancelled context is refused too. Operations never
// fail: they report their outcome as a message.
//
//	m := vending.MustNew()
//	fmt.Println(m.InsertCoin(ctx)) // Coin Inserted. Select your drink.
//	fmt.Println(m.InsertCoin(ctx)) // Invalid operation in current state.
//
// A machine can be brought up in a known state, for example after a restart:
//
//	m, err := vending.New(vending.WithState(vending.Dispensing))
package vending
