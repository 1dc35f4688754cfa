package pci

var statusFields = [...]BitVecFieldDescriptor{
	{Len: 3, Name: "Reserved 1", Reserved: true},
	{Len: 1, Name: "INTx"},  // Interrupt Status
	{Len: 1, Name: "Cap"},   // Capabilities List
	{Len: 1, Name: "66MHz"}, // 66 MHz Capable
	{Len: 1, Name: "Reserved 2", Reserved: true},
	{Len: 1, Name: "FastB2B"},          // Fast Back-to-Back Capable
	{Len: 1, Name: "MasterDataParErr"}, // Master Data Parity Error
	{Len: 1, Name: "DEVSEL"},           // DEVSEL Timing
	{Len: 1, Name: "SigTAbrt"},         // Signaled Target Abort
	{Len: 1, Name: "RecvTAbrt"},        // Received Target Abort
	{Len: 1, Name: "RecvMAbrt"},        // Received Master Abort
	{Len: 1, Name: "SigSysErr"},        // Signaled System Error
	{Len: 1, Name: "ParErr"},           // Detected Parity Error
}

// StatusRegister 偏移 0x06 的状态寄存器
type StatusRegister struct {
	vector uint16
}

func NewStatusRegister(v uint16) StatusRegister {
	return StatusRegister{vector: v}
}

func (r StatusRegister) Value() uint16 {
	return r.vector
}

func (r StatusRegister) Flags() Flags {
	return DecodeBitVector(statusFields[:], r.vector)
}

func (r StatusRegister) String() string {
	return r.Flags().String()
}
