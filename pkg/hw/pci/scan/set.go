package scan

import (
	"github.com/google/btree"

	"golspci/pkg/hw/pci"
)

// AddressSet 有序去重的地址集合
type AddressSet struct {
	tree *btree.BTreeG[pci.Address]
}

func NewAddressSet(addrs ...pci.Address) *AddressSet {
	s := &AddressSet{tree: btree.NewG(8, pci.Address.Less)}
	for _, a := range addrs {
		s.Add(a)
	}
	return s
}

// Add 返回 true 表示之前不存在
func (s *AddressSet) Add(a pci.Address) bool {
	_, replaced := s.tree.ReplaceOrInsert(a)
	return !replaced
}

func (s *AddressSet) Has(a pci.Address) bool {
	return s.tree.Has(a)
}

func (s *AddressSet) Len() int {
	return s.tree.Len()
}

// Slice 按 bus/device/function 升序
func (s *AddressSet) Slice() []pci.Address {
	out := make([]pci.Address, 0, s.tree.Len())
	s.tree.Ascend(func(a pci.Address) bool {
		out = append(out, a)
		return true
	})
	return out
}
