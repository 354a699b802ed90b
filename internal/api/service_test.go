package api

import (
	"os"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceDesc_MatchesProto(t *testing.T) {
	src, err := os.ReadFile("taskhub.proto")
	require.NoError(t, err)

	assert.Contains(t, string(src), "package taskhub;")
	assert.Equal(t, ServiceName, TaskHub_ServiceDesc.ServiceName)

	var declared []string
	for _, m := range regexp.MustCompile(`(?m)^\s*rpc (\w+)\(`).FindAllStringSubmatch(string(src), -1) {
		declared = append(declared, m[1])
	}

	var registered []string
	for _, m := range TaskHub_ServiceDesc.Methods {
		registered = append(registered, m.MethodName)
	}

	assert.ElementsMatch(t, declared, registered)
	assert.Len(t, registered, 14)
}
