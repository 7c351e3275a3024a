package utils

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// IsValidEthAddress checks if the given string is a well-formed, 0x-prefixed
// EVM address. Note: it does not check the checksum casing.
func IsValidEthAddress(address string) bool {
	if !strings.HasPrefix(address, "0x") {
		return false
	}
	return common.IsHexAddress(address)
}
