//go:build stm32f303 || (!stm32f302 && !stm32f303e && !stm32f333 && !stm32f373)

package chip

// Name identifies the compiled-in variant. This is the default variant when
// no chip build tag is given.
const Name = "stm32f303"

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
			7:  af(1, 2, 3, 4, 5, 6, 8, 15),
			8:  af(0, 4, 5, 6, 7, 8, 10, 15),
			9:  af(3, 4, 5, 6, 7, 8, 9, 10, 15),
			10: af(1, 3, 4, 6, 7, 8, 10, 11, 15),
			11: af(6, 7, 8, 9, 10, 11, 12, 14, 15),
			12: af(1, 6, 7, 8, 9, 10, 11, 14, 15),
			13: af(0, 1, 3, 5, 7, 10, 15),
			14: af(0, 3, 4, 5, 6, 7, 15),
			15: af(0, 1, 2, 4, 5, 6, 7, 9, 15),
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
			5:  af(1, 2, 3, 4, 5, 6, 7, 10, 15),
			6:  af(1, 2, 3, 4, 5, 6, 7, 10, 15),
			7:  af(1, 2, 3, 4, 5, 7, 10, 15),
			8:  af(1, 2, 3, 4, 8, 9, 10, 12, 15),
			9:  af(1, 2, 4, 6, 8, 9, 10, 15),
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
			0:  af(1),
			1:  af(1),
			2:  af(1, 3),
			3:  af(1, 6),
			4:  af(1, 7),
			5:  af(1, 3, 7),
			6:  af(1, 2, 4, 6, 7),
			7:  af(1, 2, 4, 6, 7),
			8:  af(1, 2, 4, 7),
			9:  af(1, 2, 4, 5, 6),
			10: af(1, 4, 5, 6, 7),
			11: af(1, 4, 5, 6, 7),
			12: af(1, 4, 5, 6, 7),
			13: af(4),
		},
	},
	3: { // port D
		present: allPins,
		alt: [16]uint16{
			0:  af(1, 7),
			1:  af(1, 4, 6, 7),
			2:  af(1, 2, 4, 5),
			3:  af(1, 2, 7),
			4:  af(1, 2, 7),
			5:  af(1, 7),
			6:  af(1, 2, 7),
			7:  af(1, 2, 7),
			8:  af(1, 7),
			9:  af(1, 7),
			10: af(1, 7),
			11: af(1, 7),
			12: af(1, 2, 3, 7),
			13: af(1, 2, 3),
			14: af(1, 2, 3),
			15: af(1, 2, 3, 6),
		},
	},
	4: { // port E
		present: allPins,
		alt: [16]uint16{
			0:  af(1, 2, 4, 7),
			1:  af(1, 4, 7),
			2:  af(0, 1, 2, 3),
			3:  af(0, 1, 2, 3),
			4:  af(0, 1, 2, 3),
			5:  af(0, 1, 2, 3),
			6:  af(0, 1),
			7:  af(1, 2),
			8:  af(1, 2),
			9:  af(1, 2),
			10: af(1, 2),
			11: af(1, 2),
			12: af(1, 2),
			13: af(1, 2),
			14: af(1, 2, 6),
			15: af(1, 2, 7),
		},
	},
	5: { // port F
		present: pins(0, 1, 2, 4, 6, 9, 10),
		alt: [16]uint16{
			0:  af(4, 6),
			1:  af(4),
			2:  af(1),
			4:  af(1, 2),
			6:  af(1, 2, 4, 7),
			9:  af(1, 3, 5),
			10: af(1, 3, 5),
		},
	},
}
