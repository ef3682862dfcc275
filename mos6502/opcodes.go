package mos6502

import "fmt"

// AddrMode identifies one of the 6502's addressing modes.
type AddrMode uint8

const (
	Implicit AddrMode = iota
	Accumulator
	Immediate
	ZeroPage
	ZeroPageX
	ZeroPageY
	Relative
	Absolute
	AbsoluteX
	AbsoluteY
	Indirect
	IndirectX // indexed indirect, (zp,X)
	IndirectY // indirect indexed, (zp),Y
)

var modeNames = map[AddrMode]string{
	Implicit: "IMPLICIT", Accumulator: "ACCUMULATOR", Immediate: "IMMEDIATE",
	ZeroPage: "ZERO_PAGE", ZeroPageX: "ZERO_PAGE_X", ZeroPageY: "ZERO_PAGE_Y",
	Relative: "RELATIVE", Absolute: "ABSOLUTE", AbsoluteX: "ABSOLUTE_X",
	AbsoluteY: "ABSOLUTE_Y", Indirect: "INDIRECT", IndirectX: "INDIRECT_X",
	IndirectY: "INDIRECT_Y",
}

func (m AddrMode) String() string { return modeNames[m] }

// opId enumerates the official 6502 operations.
type opId uint8

const (
	opADC opId = iota
	opAND
	opASL
	opBCC
	opBCS
	opBEQ
	opBIT
	opBMI
	opBNE
	opBPL
	opBRK
	opBVC
	opBVS
	opCLC
	opCLD
	opCLI
	opCLV
	opCMP
	opCPX
	opCPY
	opDEC
	opDEX
	opDEY
	opEOR
	opINC
	opINX
	opINY
	opJMP
	opJSR
	opLDA
	opLDX
	opLDY
	opLSR
	opNOP
	opORA
	opPHA
	opPHP
	opPLA
	opPLP
	opROL
	opROR
	opRTI
	opRTS
	opSBC
	opSEC
	opSED
	opSEI
	opSTA
	opSTX
	opSTY
	opTAX
	opTAY
	opTSX
	opTXA
	opTXS
	opTYA
)

type opcode struct {
	id               opId
	name             string
	mode             AddrMode
	bytes            uint8 // total instruction length, including the opcode byte
	baseCycles       uint8
	pageCrossApplies bool // true only for read instructions using indexed/indirect-indexed modes
}

func (o opcode) String() string {
	return fmt.Sprintf("%s %s", o.name, o.mode)
}

var opcodeTable [256]*opcode

func def(b uint8, id opId, name string, mode AddrMode, bytes, cycles uint8, pageCross bool) {
	opcodeTable[b] = &opcode{id: id, name: name, mode: mode, bytes: bytes, baseCycles: cycles, pageCrossApplies: pageCross}
}

func init() {
	def(0x69, opADC, "ADC", Immediate, 2, 2, false)
	def(0x65, opADC, "ADC", ZeroPage, 2, 3, false)
	def(0x75, opADC, "ADC", ZeroPageX, 2, 4, false)
	def(0x6D, opADC, "ADC", Absolute, 3, 4, false)
	def(0x7D, opADC, "ADC", AbsoluteX, 3, 4, true)
	def(0x79, opADC, "ADC", AbsoluteY, 3, 4, true)
	def(0x61, opADC, "ADC", IndirectX, 2, 6, false)
	def(0x71, opADC, "ADC", IndirectY, 2, 5, true)

	def(0x29, opAND, "AND", Immediate, 2, 2, false)
	def(0x25, opAND, "AND", ZeroPage, 2, 3, false)
	def(0x35, opAND, "AND", ZeroPageX, 2, 4, false)
	def(0x2D, opAND, "AND", Absolute, 3, 4, false)
	def(0x3D, opAND, "AND", AbsoluteX, 3, 4, true)
	def(0x39, opAND, "AND", AbsoluteY, 3, 4, true)
	def(0x21, opAND, "AND", IndirectX, 2, 6, false)
	def(0x31, opAND, "AND", IndirectY, 2, 5, true)

	def(0x0A, opASL, "ASL", Accumulator, 1, 2, false)
	def(0x06, opASL, "ASL", ZeroPage, 2, 5, false)
	def(0x16, opASL, "ASL", ZeroPageX, 2, 6, false)
	def(0x0E, opASL, "ASL", Absolute, 3, 6, false)
	def(0x1E, opASL, "ASL", AbsoluteX, 3, 7, false)

	def(0x90, opBCC, "BCC", Relative, 2, 2, false)
	def(0xB0, opBCS, "BCS", Relative, 2, 2, false)
	def(0xF0, opBEQ, "BEQ", Relative, 2, 2, false)

	def(0x24, opBIT, "BIT", ZeroPage, 2, 3, false)
	def(0x2C, opBIT, "BIT", Absolute, 3, 4, false)

	def(0x30, opBMI, "BMI", Relative, 2, 2, false)
	def(0xD0, opBNE, "BNE", Relative, 2, 2, false)
	def(0x10, opBPL, "BPL", Relative, 2, 2, false)

	def(0x00, opBRK, "BRK", Implicit, 1, 7, false)

	def(0x50, opBVC, "BVC", Relative, 2, 2, false)
	def(0x70, opBVS, "BVS", Relative, 2, 2, false)

	def(0x18, opCLC, "CLC", Implicit, 1, 2, false)
	def(0xD8, opCLD, "CLD", Implicit, 1, 2, false)
	def(0x58, opCLI, "CLI", Implicit, 1, 2, false)
	def(0xB8, opCLV, "CLV", Implicit, 1, 2, false)

	def(0xC9, opCMP, "CMP", Immediate, 2, 2, false)
	def(0xC5, opCMP, "CMP", ZeroPage, 2, 3, false)
	def(0xD5, opCMP, "CMP", ZeroPageX, 2, 4, false)
	def(0xCD, opCMP, "CMP", Absolute, 3, 4, false)
	def(0xDD, opCMP, "CMP", AbsoluteX, 3, 4, true)
	def(0xD9, opCMP, "CMP", AbsoluteY, 3, 4, true)
	def(0xC1, opCMP, "CMP", IndirectX, 2, 6, false)
	def(0xD1, opCMP, "CMP", IndirectY, 2, 5, true)

	def(0xE0, opCPX, "CPX", Immediate, 2, 2, false)
	def(0xE4, opCPX, "CPX", ZeroPage, 2, 3, false)
	def(0xEC, opCPX, "CPX", Absolute, 3, 4, false)

	def(0xC0, opCPY, "CPY", Immediate, 2, 2, false)
	def(0xC4, opCPY, "CPY", ZeroPage, 2, 3, false)
	def(0xCC, opCPY, "CPY", Absolute, 3, 4, false)

	def(0xC6, opDEC, "DEC", ZeroPage, 2, 5, false)
	def(0xD6, opDEC, "DEC", ZeroPageX, 2, 6, false)
	def(0xCE, opDEC, "DEC", Absolute, 3, 6, false)
	def(0xDE, opDEC, "DEC", AbsoluteX, 3, 7, false)

	def(0xCA, opDEX, "DEX", Implicit, 1, 2, false)
	def(0x88, opDEY, "DEY", Implicit, 1, 2, false)

	def(0x49, opEOR, "EOR", Immediate, 2, 2, false)
	def(0x45, opEOR, "EOR", ZeroPage, 2, 3, false)
	def(0x55, opEOR, "EOR", ZeroPageX, 2, 4, false)
	def(0x4D, opEOR, "EOR", Absolute, 3, 4, false)
	def(0x5D, opEOR, "EOR", AbsoluteX, 3, 4, true)
	def(0x59, opEOR, "EOR", AbsoluteY, 3, 4, true)
	def(0x41, opEOR, "EOR", IndirectX, 2, 6, false)
	def(0x51, opEOR, "EOR", IndirectY, 2, 5, true)

	def(0xE6, opINC, "INC", ZeroPage, 2, 5, false)
	def(0xF6, opINC, "INC", ZeroPageX, 2, 6, false)
	def(0xEE, opINC, "INC", Absolute, 3, 6, false)
	def(0xFE, opINC, "INC", AbsoluteX, 3, 7, false)

	def(0xE8, opINX, "INX", Implicit, 1, 2, false)
	def(0xC8, opINY, "INY", Implicit, 1, 2, false)

	def(0x4C, opJMP, "JMP", Absolute, 3, 3, false)
	def(0x6C, opJMP, "JMP", Indirect, 3, 5, false)

	def(0x20, opJSR, "JSR", Absolute, 3, 6, false)

	def(0xA9, opLDA, "LDA", Immediate, 2, 2, false)
	def(0xA5, opLDA, "LDA", ZeroPage, 2, 3, false)
	def(0xB5, opLDA, "LDA", ZeroPageX, 2, 4, false)
	def(0xAD, opLDA, "LDA", Absolute, 3, 4, false)
	def(0xBD, opLDA, "LDA", AbsoluteX, 3, 4, true)
	def(0xB9, opLDA, "LDA", AbsoluteY, 3, 4, true)
	def(0xA1, opLDA, "LDA", IndirectX, 2, 6, false)
	def(0xB1, opLDA, "LDA", IndirectY, 2, 5, true)

	def(0xA2, opLDX, "LDX", Immediate, 2, 2, false)
	def(0xA6, opLDX, "LDX", ZeroPage, 2, 3, false)
	def(0xB6, opLDX, "LDX", ZeroPageY, 2, 4, false)
	def(0xAE, opLDX, "LDX", Absolute, 3, 4, false)
	def(0xBE, opLDX, "LDX", AbsoluteY, 3, 4, true)

	def(0xA0, opLDY, "LDY", Immediate, 2, 2, false)
	def(0xA4, opLDY, "LDY", ZeroPage, 2, 3, false)
	def(0xB4, opLDY, "LDY", ZeroPageX, 2, 4, false)
	def(0xAC, opLDY, "LDY", Absolute, 3, 4, false)
	def(0xBC, opLDY, "LDY", AbsoluteX, 3, 4, true)

	def(0x4A, opLSR, "LSR", Accumulator, 1, 2, false)
	def(0x46, opLSR, "LSR", ZeroPage, 2, 5, false)
	def(0x56, opLSR, "LSR", ZeroPageX, 2, 6, false)
	def(0x4E, opLSR, "LSR", Absolute, 3, 6, false)
	def(0x5E, opLSR, "LSR", AbsoluteX, 3, 7, false)

	def(0xEA, opNOP, "NOP", Implicit, 1, 2, false)

	def(0x09, opORA, "ORA", Immediate, 2, 2, false)
	def(0x05, opORA, "ORA", ZeroPage, 2, 3, false)
	def(0x15, opORA, "ORA", ZeroPageX, 2, 4, false)
	def(0x0D, opORA, "ORA", Absolute, 3, 4, false)
	def(0x1D, opORA, "ORA", AbsoluteX, 3, 4, true)
	def(0x19, opORA, "ORA", AbsoluteY, 3, 4, true)
	def(0x01, opORA, "ORA", IndirectX, 2, 6, false)
	def(0x11, opORA, "ORA", IndirectY, 2, 5, true)

	def(0x48, opPHA, "PHA", Implicit, 1, 3, false)
	def(0x08, opPHP, "PHP", Implicit, 1, 3, false)
	def(0x68, opPLA, "PLA", Implicit, 1, 4, false)
	def(0x28, opPLP, "PLP", Implicit, 1, 4, false)

	def(0x2A, opROL, "ROL", Accumulator, 1, 2, false)
	def(0x26, opROL, "ROL", ZeroPage, 2, 5, false)
	def(0x36, opROL, "ROL", ZeroPageX, 2, 6, false)
	def(0x2E, opROL, "ROL", Absolute, 3, 6, false)
	def(0x3E, opROL, "ROL", AbsoluteX, 3, 7, false)

	def(0x6A, opROR, "ROR", Accumulator, 1, 2, false)
	def(0x66, opROR, "ROR", ZeroPage, 2, 5, false)
	def(0x76, opROR, "ROR", ZeroPageX, 2, 6, false)
	def(0x6E, opROR, "ROR", Absolute, 3, 6, false)
	def(0x7E, opROR, "ROR", AbsoluteX, 3, 7, false)

	def(0x40, opRTI, "RTI", Implicit, 1, 6, false)
	def(0x60, opRTS, "RTS", Implicit, 1, 6, false)

	def(0xE9, opSBC, "SBC", Immediate, 2, 2, false)
	def(0xE5, opSBC, "SBC", ZeroPage, 2, 3, false)
	def(0xF5, opSBC, "SBC", ZeroPageX, 2, 4, false)
	def(0xED, opSBC, "SBC", Absolute, 3, 4, false)
	def(0xFD, opSBC, "SBC", AbsoluteX, 3, 4, true)
	def(0xF9, opSBC, "SBC", AbsoluteY, 3, 4, true)
	def(0xE1, opSBC, "SBC", IndirectX, 2, 6, false)
	def(0xF1, opSBC, "SBC", IndirectY, 2, 5, true)

	def(0x38, opSEC, "SEC", Implicit, 1, 2, false)
	def(0xF8, opSED, "SED", Implicit, 1, 2, false)
	def(0x78, opSEI, "SEI", Implicit, 1, 2, false)

	def(0x85, opSTA, "STA", ZeroPage, 2, 3, false)
	def(0x95, opSTA, "STA", ZeroPageX, 2, 4, false)
	def(0x8D, opSTA, "STA", Absolute, 3, 4, false)
	def(0x9D, opSTA, "STA", AbsoluteX, 3, 5, false)
	def(0x99, opSTA, "STA", AbsoluteY, 3, 5, false)
	def(0x81, opSTA, "STA", IndirectX, 2, 6, false)
	def(0x91, opSTA, "STA", IndirectY, 2, 6, false)

	def(0x86, opSTX, "STX", ZeroPage, 2, 3, false)
	def(0x96, opSTX, "STX", ZeroPageY, 2, 4, false)
	def(0x8E, opSTX, "STX", Absolute, 3, 4, false)

	def(0x84, opSTY, "STY", ZeroPage, 2, 3, false)
	def(0x94, opSTY, "STY", ZeroPageX, 2, 4, false)
	def(0x8C, opSTY, "STY", Absolute, 3, 4, false)

	def(0xAA, opTAX, "TAX", Implicit, 1, 2, false)
	def(0xA8, opTAY, "TAY", Implicit, 1, 2, false)
	def(0xBA, opTSX, "TSX", Implicit, 1, 2, false)
	def(0x8A, opTXA, "TXA", Implicit, 1, 2, false)
	def(0x9A, opTXS, "TXS", Implicit, 1, 2, false)
	def(0x98, opTYA, "TYA", Implicit, 1, 2, false)
}

// resolveAddr computes the effective address for mode, along with the
// extra cycle that a page-crossing read at that address would cost.
// PC is left pointing at the first operand byte; Step() advances it
// past the full instruction once the operation has run, unless the
// operation itself redirected control flow.
func (c *CPU) resolveAddr(mode AddrMode) (addr uint16, extra int) {
	switch mode {
	case Implicit, Accumulator:
		return 0, 0
	case Immediate:
		return c.PC, 0
	case ZeroPage:
		return uint16(c.read(c.PC)), 0
	case ZeroPageX:
		return uint16(c.read(c.PC) + c.X), 0
	case ZeroPageY:
		return uint16(c.read(c.PC) + c.Y), 0
	case Absolute:
		return c.read16(c.PC), 0
	case AbsoluteX:
		base := c.read16(c.PC)
		addr = base + uint16(c.X)
		return addr, crossed(base, addr)
	case AbsoluteY:
		base := c.read16(c.PC)
		addr = base + uint16(c.Y)
		return addr, crossed(base, addr)
	case Indirect:
		ptr := c.read16(c.PC)
		lo := c.read(ptr)
		hi := c.read((ptr & 0xFF00) | ((ptr + 1) & 0x00FF)) // JMP ($xxFF) bug
		return uint16(hi)<<8 | uint16(lo), 0
	case IndirectX:
		zp := c.read(c.PC) + c.X
		lo := c.read(uint16(zp))
		hi := c.read(uint16(zp + 1))
		return uint16(hi)<<8 | uint16(lo), 0
	case IndirectY:
		zp := c.read(c.PC)
		lo := c.read(uint16(zp))
		hi := c.read(uint16(zp + 1))
		base := uint16(hi)<<8 | uint16(lo)
		addr = base + uint16(c.Y)
		return addr, crossed(base, addr)
	case Relative:
		return (c.PC + 1) + uint16(int8(c.read(c.PC))), 0
	}
	panic(fmt.Sprintf("mos6502: unhandled addressing mode %v", mode))
}

func crossed(a, b uint16) int {
	if a&0xFF00 != b&0xFF00 {
		return 1
	}
	return 0
}
