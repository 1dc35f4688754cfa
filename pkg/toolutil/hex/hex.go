package hex

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

func parseHex(s string, bits int) (uint64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "\uFEFF") // 去除 BOM
	s = strings.TrimPrefix(strings.ToLower(s), "0x")
	return strconv.ParseUint(s, 16, bits)
}

// 目录名 "1f" 这种短的十六进制
func ParseHexToUint8(s string) (uint8, error) {
	v, err := parseHex(s, 8)
	return uint8(v), err
}

func ParseHexToUint16(s string) (uint16, error) {
	v, err := parseHex(s, 16)
	return uint16(v), err
}

func ParseHexToUint32(s string) (uint32, error) {
	v, err := parseHex(s, 32)
	return uint32(v), err
}

// 文件中16进制字符串读取成正整数(sysfs 的 vendor/class 等属性文件)
func ReadHexToUint32Ff(path string) (uint32, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read file failed: %w", err)
	}

	return ParseHexToUint32(string(b))
}
