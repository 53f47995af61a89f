//go:build stm32f302

package chip

// Name identifies the compiled-in variant.
const Name = "stm32f302"

var banks = [8]bankDesc{
	0: { // port A
		present: allPins,
		alt: [16]uint16{
			0:  af(1, 3, 7, 15),
			1:  af(0, 1, 3, 7, 9, 15),
			2:  af(1, 3, 7, 8, 9, 15),
			3:  af(1, 3, 7, 9, 15),
			4:  af(3, 6, 7, 15),
			5:  af(1, 3, 15),
			6:  af(1, 3, 6, 15),
			7:  af(1, 3, 6, 15),
			8:  af(0, 3, 4, 5, 6, 7, 15),
			9:  af(2, 3, 4, 5, 6, 7, 9, 10, 15),
			10: af(1, 3, 4, 5, 6, 7, 8, 10, 15),
			11: af(5, 6, 7, 9, 11, 12, 15),
			12: af(1, 5, 6, 7, 8, 9, 11, 15),
			13: af(0, 1, 3, 5, 7, 15),
			14: af(0, 3, 4, 6, 7, 15),
			15: af(0, 1, 3, 4, 6, 7, 9, 15),
		},
	},
	1: { // port B
		present: allPins,
		alt: [16]uint16{
			0:  af(3, 6, 15),
			1:  af(3, 6, 8, 15),
			2:  af(3, 15),
			3:  af(0, 1, 3, 6, 7, 15),
			4:  af(0, 1, 3, 6, 7, 10, 15),
			5:  af(1, 4, 6, 7, 8, 10, 15),
			6:  af(1, 3, 4, 7, 15),
			7:  af(1, 3, 4, 7, 15),
			8:  af(1, 3, 4, 7, 9, 12, 15),
			9:  af(1, 4, 6, 7, 8, 9, 15),
			10: af(1, 3, 7, 15),
			11: af(1, 3, 7, 15),
			12: af(3, 4, 5, 6, 7, 15),
			13: af(3, 5, 6, 7, 15),
			14: af(1, 3, 5, 6, 7, 15),
			15: af(0, 1, 2, 4, 5, 15),
		},
	},
	2: { // port C
		present: allPins,
		alt: [16]uint16{
			0:  af(1, 2),
			1:  af(1, 2),
			2:  af(1, 2),
			3:  af(1, 2, 6),
			4:  af(1, 2, 7),
			5:  af(1, 2, 3, 7),
			6:  af(1, 6, 7),
			7:  af(1, 6),
			8:  af(1),
			9:  af(1, 3, 5),
			10: af(1, 6, 7),
			11: af(1, 6, 7),
			12: af(1, 6, 7),
			13: af(4),
		},
	},
	3: { // port D
		present: pins(2),
		alt: [16]uint16{
			2: af(1),
		},
	},
	5: { // port F
		present: pins(0, 1),
		alt: [16]uint16{
			0: af(4, 5, 6),
			1: af(4, 5),
		},
	},
}
