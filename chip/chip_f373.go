//go:build stm32f373

package chip

// Name identifies the compiled-in variant.
const Name = "stm32f373"

var banks = [8]bankDesc{
	0: { // port A
		present: allPins,
		alt: [16]uint16{
			0:  af(1, 2, 3, 7, 8, 11, 15),
			1:  af(0, 1, 2, 3, 6, 7, 9, 11, 15),
			2:  af(1, 2, 3, 6, 7, 8, 9, 11, 15),
			3:  af(1, 2, 3, 6, 7, 9, 11, 15),
			4:  af(2, 3, 5, 6, 7, 10, 15),
			5:  af(1, 3, 5, 7, 9, 10, 15),
			6:  af(1, 2, 3, 5, 8, 9, 15),
			7:  af(1, 2, 3, 5, 8, 9, 15),
			8:  af(0, 2, 4, 5, 7, 10, 15),
			9:  af(2, 3, 4, 5, 7, 9, 10, 15),
			10: af(1, 3, 4, 5, 7, 9, 10, 15),
			11: af(2, 5, 6, 7, 8, 9, 10, 14, 15),
			12: af(1, 2, 6, 7, 8, 9, 10, 14, 15),
			13: af(0, 1, 2, 3, 5, 6, 7, 10, 15),
			14: af(0, 3, 4, 10, 15),
			15: af(0, 1, 3, 4, 5, 6, 10, 15),
		},
	},
	1: { // port B
		present: pins(0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 14, 15),
		alt: [16]uint16{
			0:  af(2, 3, 5, 10, 15),
			1:  af(2, 3, 15),
			2:  af(15),
			3:  af(0, 1, 2, 3, 5, 6, 7, 9, 10, 15),
			4:  af(0, 1, 2, 3, 5, 6, 7, 9, 10, 15),
			5:  af(1, 2, 4, 5, 6, 7, 10, 11, 15),
			6:  af(1, 2, 3, 4, 7, 9, 10, 11, 15),
			7:  af(1, 2, 3, 4, 7, 9, 10, 11, 15),
			8:  af(1, 2, 3, 4, 5, 6, 7, 8, 9, 11, 15),
			9:  af(1, 2, 4, 5, 6, 7, 8, 9, 11, 15),
			10: af(1, 3, 5, 6, 7, 15),
			14: af(1, 3, 5, 7, 9, 15),
			15: af(0, 1, 2, 3, 5, 9, 15),
		},
	},
	2: { // port C
		present: allPins,
		alt: [16]uint16{
			0:  af(1, 2),
			1:  af(1, 2),
			2:  af(1, 2, 5),
			3:  af(1, 2, 5),
			4:  af(1, 2, 3, 7),
			5:  af(1, 3, 7),
			6:  af(1, 2, 5),
			7:  af(1, 2, 5),
			8:  af(1, 2, 5),
			9:  af(1, 2, 5),
			10: af(1, 2, 6, 7),
			11: af(1, 2, 6, 7),
			12: af(1, 2, 6, 7),
		},
	},
	3: { // port D
		present: allPins,
		alt: [16]uint16{
			0:  af(1, 2, 7),
			1:  af(1, 2, 7),
			2:  af(1, 2),
			3:  af(1, 5, 7),
			4:  af(1, 5, 7),
			5:  af(1, 7),
			6:  af(1, 5, 7),
			7:  af(1, 5, 7),
			8:  af(1, 3, 5, 7),
			9:  af(1, 3, 7),
			10: af(1, 7),
			11: af(1, 7),
			12: af(1, 2, 3, 7),
			13: af(1, 2, 3),
			14: af(1, 2, 3),
			15: af(1, 2, 3),
		},
	},
	4: { // port E
		present: allPins,
		alt: [16]uint16{
			0:  af(1, 2, 7),
			1:  af(1, 7),
			2:  af(0, 1, 3),
			3:  af(0, 1, 3),
			4:  af(0, 1, 3),
			5:  af(0, 1, 3),
			6:  af(0, 1),
			7:  af(1),
			8:  af(1),
			9:  af(1),
			10: af(1),
			11: af(1),
			12: af(1),
			13: af(1),
			14: af(1),
			15: af(1, 7),
		},
	},
	5: { // port F
		present: pins(0, 1, 2, 4, 6, 7, 9, 10),
		alt: [16]uint16{
			0:  af(4),
			1:  af(4),
			2:  af(1, 4),
			4:  af(1),
			6:  af(1, 2, 4, 5, 7),
			7:  af(1, 4, 7),
			9:  af(1, 2),
			10: af(1),
		},
	},
}
