//go:build stm32f303e

package chip

// Name identifies the compiled-in variant.
const Name = "stm32f303e"

var banks = [8]bankDesc{
	0: { // port A
		present: allPins,
		alt: [16]uint16{
			0:  af(1, 3, 7, 8, 9, 10, 15),
			1:  af(0, 1, 3, 7, 9, 15),
			2:  af(1, 3, 7, 8, 9, 15),
			3:  af(1, 3, 7, 9, 15),
			4:  af(2, 3, 5, 6, 7, 15),
			5:  af(1, 3, 5, 15),
			6:  af(1, 2, 3, 4, 5, 6, 8, 15),
			7:  af(1, 2, 3, 4, 5, 6, 15),
			8:  af(0, 3, 4, 5, 6, 7, 8, 10, 15),
			9:  af(2, 3, 4, 5, 6, 7, 8, 9, 10, 15),
			10: af(1, 3, 4, 5, 6, 7, 8, 10, 11, 15),
			11: af(5, 6, 7, 8, 9, 10, 11, 12, 15),
			12: af(1, 5, 6, 7, 8, 9, 10, 11, 15),
			13: af(0, 1, 3, 5, 7, 10, 15),
			14: af(0, 3, 4, 5, 6, 7, 15),
			15: af(0, 1, 2, 3, 4, 5, 6, 7, 9, 15),
		},
	},
	1: { // port B
		present: allPins,
		alt: [16]uint16{
			0:  af(2, 3, 4, 6, 15),
			1:  af(2, 3, 4, 6, 8, 15),
			2:  af(3, 15),
			3:  af(0, 1, 2, 3, 4, 5, 6, 7, 10, 15),
			4:  af(0, 1, 2, 3, 4, 5, 6, 7, 10, 15),
			5:  af(1, 2, 3, 4, 5, 6, 7, 8, 10, 15),
			6:  af(1, 2, 3, 4, 5, 6, 7, 10, 15),
			7:  af(1, 2, 3, 4, 5, 7, 10, 12, 15),
			8:  af(1, 2, 3, 4, 7, 8, 9, 10, 12, 15),
			9:  af(1, 2, 4, 6, 7, 8, 9, 10, 15),
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
			2:  af(1, 2, 3),
			3:  af(1, 2, 6),
			4:  af(1, 2, 7),
			5:  af(1, 2, 3, 7),
			6:  af(1, 2, 4, 6, 7),
			7:  af(1, 2, 4, 6, 7),
			8:  af(1, 2, 4, 7),
			9:  af(1, 2, 3, 4, 5, 6),
			10: af(1, 4, 5, 6, 7),
			11: af(1, 4, 5, 6, 7),
			12: af(1, 4, 5, 6, 7),
			13: af(1, 4),
			14: af(1),
			15: af(1),
		},
	},
	3: { // port D
		present: allPins,
		alt: [16]uint16{
			0:  af(1, 7, 12),
			1:  af(1, 4, 6, 7, 12),
			2:  af(1, 2, 4, 5),
			3:  af(1, 2, 7, 12),
			4:  af(1, 2, 7, 12),
			5:  af(1, 7, 12),
			6:  af(1, 2, 7, 12),
			7:  af(1, 2, 7, 12),
			8:  af(1, 7, 12),
			9:  af(1, 7, 12),
			10: af(1, 7, 12),
			11: af(1, 7, 12),
			12: af(1, 2, 3, 7, 12),
			13: af(1, 2, 3, 12),
			14: af(1, 2, 3, 12),
			15: af(1, 2, 3, 6, 12),
		},
	},
	4: { // port E
		present: allPins,
		alt: [16]uint16{
			0:  af(1, 2, 4, 6, 7, 12),
			1:  af(1, 4, 6, 7, 12),
			2:  af(0, 1, 2, 3, 5, 6, 12),
			3:  af(0, 1, 2, 3, 5, 6, 12),
			4:  af(0, 1, 2, 3, 5, 6, 12),
			5:  af(0, 1, 2, 3, 5, 6, 12),
			6:  af(0, 1, 5, 6, 12),
			7:  af(1, 2, 12),
			8:  af(1, 2, 12),
			9:  af(1, 2, 12),
			10: af(1, 2, 12),
			11: af(1, 2, 5, 12),
			12: af(1, 2, 5, 12),
			13: af(1, 2, 5, 12),
			14: af(1, 2, 5, 6, 12),
			15: af(1, 2, 7, 12),
		},
	},
	5: { // port F
		present: allPins,
		alt: [16]uint16{
			0:  af(1, 4, 5, 6),
			1:  af(1, 4, 5),
			2:  af(1, 2, 12),
			3:  af(1, 2, 12),
			4:  af(1, 2, 3, 12),
			5:  af(1, 2, 12),
			6:  af(1, 2, 4, 7, 12),
			7:  af(1, 2, 12),
			8:  af(1, 2, 12),
			9:  af(1, 2, 3, 5, 12),
			10: af(1, 2, 3, 5, 12),
			11: af(1, 2),
			12: af(1, 2, 12),
			13: af(1, 2, 12),
			14: af(1, 2, 12),
			15: af(1, 2, 12),
		},
	},
	6: { // port G
		present: allPins,
		alt: [16]uint16{
			0:  af(1, 2, 12),
			1:  af(1, 2, 12),
			2:  af(1, 2, 12),
			3:  af(1, 2, 12),
			4:  af(1, 2, 12),
			5:  af(1, 2, 12),
			6:  af(1, 12),
			7:  af(1, 12),
			8:  af(1),
			9:  af(1, 12),
			10: af(1, 12),
			11: af(1, 12),
			12: af(1, 12),
			13: af(1, 12),
			14: af(1, 12),
			15: af(1),
		},
	},
	7: { // port H
		present: pins(0, 1, 2),
		alt: [16]uint16{
			0: af(1, 2, 12),
			1: af(1, 2, 12),
			2: af(1),
		},
	},
}
