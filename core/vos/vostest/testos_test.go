package vostest

import (
	"fmt"
	"testing"

	"github.com/josephlewis42/chainsh/core/vos"
	"github.com/stretchr/testify/assert"
)

func TestTestOS(t *testing.T) {
	var virtOS vos.VOS = NewTestOSWithInput("in", "A=B")

	fmt.Fprint(virtOS.Stdout(), "out")
	fmt.Fprint(virtOS.Stderr(), "err")

	testOS := virtOS.(*TestOS)
	assert.Equal(t, "out", testOS.OutBuf.String())
	assert.Equal(t, "err", testOS.ErrBuf.String())
	assert.Equal(t, "outerr", testOS.Output())
	assert.Equal(t, "B", virtOS.Getenv("A"))
}
