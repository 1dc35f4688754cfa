package pci

var commandFields = [...]BitVecFieldDescriptor{
	{Len: 1, Name: "I/O"},       // I/O Space
	{Len: 1, Name: "Mem"},       // Memory Space
	{Len: 1, Name: "BusMaster"}, // Bus Master
	{Len: 1, Name: "SpecCycle"}, // Special Cycles
	{Len: 1, Name: "MemWINV"},   // Memory Write and Invalidate Enable
	{Len: 1, Name: "VGASnoop"},  // VGA Palette Snoop
	{Len: 1, Name: "ParErr"},    // Parity Error Response
	{Len: 1, Name: "Reserved 1", Reserved: true},
	{Len: 1, Name: "SERR"},    // SERR# Enable
	{Len: 1, Name: "FastB2B"}, // Fast Back-to-Back Enable
	{Len: 1, Name: "DisINTx"}, // Interrupt Disable
	{Len: 4, Name: "Reserved 2", Reserved: true},
}

// CommandRegister 偏移 0x04 的命令寄存器
type CommandRegister struct {
	vector uint16
}

func NewCommandRegister(v uint16) CommandRegister {
	return CommandRegister{vector: v}
}

func (r CommandRegister) Value() uint16 {
	return r.vector
}

func (r CommandRegister) Flags() Flags {
	return DecodeBitVector(commandFields[:], r.vector)
}

func (r CommandRegister) String() string {
	return r.Flags().String()
}
