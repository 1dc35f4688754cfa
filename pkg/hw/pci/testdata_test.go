package pci

// 一个 SATA 控制器的配置空间前 64 字节
// vendor 8086 device 2922 command 0x0407 status 0x0010 class 01/06/01 header_type 0x80
var sataConfig = []byte{
	0x86, 0x80, 0x22, 0x29, 0x07, 0x04, 0x10, 0x00,
	0x02, 0x01, 0x06, 0x01, 0x00, 0x00, 0x80, 0x00,
	0x81, 0xc0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x10, 0x04, 0xfe,
	0x00, 0x00, 0x00, 0x00, 0xf4, 0x1a, 0x00, 0x11,
	0x00, 0x00, 0x00, 0x00, 0x80, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x0a, 0x01, 0x00, 0x00,
}

func cloneConfig(b []byte) []byte {
	return append([]byte(nil), b...)
}
