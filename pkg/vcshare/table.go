package vcshare

// secretShareTable lists the user-share nibbles allowed for a secret bit, a
// user name bit and the door-share nibble at the same position, indexed in
// that order. Every candidate c for door nibble d satisfies:
//
//	popcount(d|c) == 3 + secretBit
//	popcount(c)   == 2 + nameBit
//
// Door nibbles outside the two colour classes have no entry.
var secretShareTable = [2][2][16][]byte{
	{ // secret bit 0
		{ // name bit 0
			3: {5, 6, 9, 10}, 5: {3, 6, 9, 12}, 6: {3, 5, 10, 12}, 7: {3, 5, 6},
			9: {3, 5, 10, 12}, 10: {3, 6, 9, 12}, 11: {3, 9, 10}, 12: {5, 6, 9, 10},
			13: {5, 9, 12}, 14: {6, 10, 12},
		},
		{ // name bit 1
			3: {7, 11}, 5: {7, 13}, 6: {7, 14}, 7: {7},
			9: {11, 13}, 10: {11, 14}, 11: {11}, 12: {13, 14},
			13: {13}, 14: {14},
		},
	},
	{ // secret bit 1
		{ // name bit 0
			3: {12}, 5: {10}, 6: {9}, 7: {9, 10, 12},
			9: {6}, 10: {5}, 11: {5, 6, 12}, 12: {3},
			13: {3, 6, 10}, 14: {3, 5, 9},
		},
		{ // name bit 1
			3: {13, 14}, 5: {11, 14}, 6: {11, 13}, 7: {11, 13, 14},
			9: {7, 14}, 10: {7, 13}, 11: {7, 13, 14}, 12: {7, 11},
			13: {7, 11, 14}, 14: {7, 11, 13},
		},
	},
}

// Candidates returns the user-share nibbles that encode nameBit and, stacked
// on doorNibble, reveal secretBit. It returns nil when doorNibble is not a
// valid pattern. The returned slice must not be modified.
func Candidates(secretBit, nameBit, doorNibble byte) []byte {
	return secretShareTable[secretBit&1][nameBit&1][doorNibble&0x0f]
}
