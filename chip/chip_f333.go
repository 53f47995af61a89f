//go:build stm32f333

package chip

// Name identifies the compiled-in variant.
const Name = "stm32f333"

var banks = [8]bankDesc{
	0: { // port A
		present: allPins,
		alt: [16]uint16{
			0:  af(1, 3, 7, 15),
			1:  af(1, 3, 7, 9, 15),
			2:  af(1, 3, 7, 8, 9, 15),
			3:  af(1, 3, 7, 9, 15),
			4:  af(2, 3, 5, 7, 15),
			5:  af(1, 3, 5, 15),
			6:  af(1, 2, 3, 5, 6, 13, 15),
			7:  af(1, 2, 3, 5, 6, 15),
			8:  af(0, 6, 7, 13, 15),
			9:  af(3, 6, 7, 9, 10, 13, 15),
			10: af(1, 3, 6, 7, 8, 10, 13, 15),
			11: af(6, 7, 9, 11, 12, 13, 15),
			12: af(1, 6, 7, 8, 9, 11, 13, 15),
			13: af(0, 1, 3, 5, 7, 15),
			14: af(0, 3, 4, 6, 7, 15),
			15: af(0, 1, 3, 4, 5, 7, 9, 13, 15),
		},
	},
	1: { // port B
		present: allPins,
		alt: [16]uint16{
			0:  af(2, 3, 6, 15),
			1:  af(2, 3, 6, 8, 13, 15),
			2:  af(3, 13, 15),
			3:  af(0, 1, 3, 5, 7, 10, 12, 13, 15),
			4:  af(0, 1, 2, 3, 5, 7, 10, 13, 15),
			5:  af(1, 2, 4, 5, 7, 10, 13, 15),
			6:  af(1, 3, 4, 7, 12, 13, 15),
			7:  af(1, 3, 4, 7, 10, 13, 15),
			8:  af(1, 3, 4, 7, 9, 12, 13, 15),
			9:  af(1, 4, 6, 7, 8, 9, 13, 15),
			10: af(1, 3, 7, 13, 15),
			11: af(1, 3, 7, 13, 15),
			12: af(3, 6, 7, 13, 15),
			13: af(3, 6, 7, 13, 15),
			14: af(1, 3, 6, 7, 13, 15),
			15: af(1, 2, 4, 13, 15),
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
			6:  af(1, 2, 3, 7),
			7:  af(1, 2, 3),
			8:  af(1, 2, 3),
			9:  af(1, 2, 3),
			10: af(1, 7),
			11: af(1, 3, 7),
			12: af(1, 3, 7),
			13: af(4),
		},
	},
	3: { // port D
		present: pins(2),
		alt: [16]uint16{
			2: af(1, 2),
		},
	},
	5: { // port F
		present: pins(0, 1),
		alt: [16]uint16{
			0: af(6),
		},
	},
}
