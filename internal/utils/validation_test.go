package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEthAddress(t *testing.T) {
	valid := []string{
		"0x5B38Da6a701c568545dCfcB03FcB875f56beddC4",
		"0x0000000000000000000000000000000000000000",
		"0xab5801a7d398351b8be11c439e05c5b3259aec9b",
	}
	for _, address := range valid {
		assert.True(t, IsValidEthAddress(address), "expected %s to be valid", address)
	}

	invalid := []string{
		"",
		"not-an-address",
		"5B38Da6a701c568545dCfcB03FcB875f56beddC4",   // no 0x prefix
		"0x5B38Da6a701c568545dCfcB03FcB875f56beddC",  // too short
		"0x5B38Da6a701c568545dCfcB03FcB875f56beddC44", // too long
		"0xZZ38Da6a701c568545dCfcB03FcB875f56beddC4", // bad hex
	}
	for _, address := range invalid {
		assert.False(t, IsValidEthAddress(address), "expected %s to be invalid", address)
	}
}
