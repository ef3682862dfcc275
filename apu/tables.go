package apu

// lengthTable maps a 5-bit length-load value (from $4003/$4007/etc.,
// bits 3-7) to the number of frame-sequencer length-clock ticks a
// channel stays audible for.
var lengthTable = [32]uint8{
	10, 254, 20, 2, 40, 4, 80, 6, 160, 8, 60, 10, 14, 12, 26, 14,
	12, 16, 24, 18, 48, 20, 96, 22, 192, 24, 72, 26, 16, 28, 32, 30,
}

// noisePeriodTable maps the noise channel's 4-bit period index to its
// timer reload value (NTSC).
var noisePeriodTable = [16]uint16{
	4, 8, 16, 32, 64, 96, 128, 160, 202, 254, 380, 508, 762, 1016, 2034, 4068,
}

// dmcPeriodTable maps the DMC's 4-bit rate index to its timer reload
// value (NTSC).
var dmcPeriodTable = [16]uint16{
	428, 380, 340, 320, 286, 254, 226, 214, 190, 160, 142, 128, 106, 84, 72, 54,
}

// triangleSequence is the 32-step ramp the triangle channel's output
// walks: 15 down to 0, then 0 up to 15.
var triangleSequence = [32]uint8{
	15, 14, 13, 12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1, 0,
	0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15,
}

// dutySequences are the four pulse-channel duty cycles, 8 steps each.
var dutySequences = [4][8]uint8{
	{0, 0, 0, 0, 0, 0, 0, 1},
	{0, 0, 0, 0, 0, 0, 1, 1},
	{0, 0, 0, 0, 1, 1, 1, 1},
	{1, 1, 1, 1, 1, 1, 0, 0},
}
