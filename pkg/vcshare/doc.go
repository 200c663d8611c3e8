// Package vcshare implements a 2-out-of-2 visual cryptography scheme for door
// keys.
//
// A door owns a random secret of Length bytes. Its door share and every user
// share are 4*Length bytes long and carry one nibble per bit of an embedded
// name. The population of each nibble (2 for a zero bit, 3 for a one bit) is
// the only signal; which bits are set is chosen at random on every call.
//
// Stacking a user share on its door share (a byte-wise OR) yields nibbles of
// population 3 or 4, which spell out the door secret:
//
//	door, secret, _ := codec.CreateDoorShareAndSecret("front")
//	user, _ := codec.CreateUserShare("alice", secret, door)
//	ok := codec.VerifyOverlap(door, user, secret)
package vcshare
