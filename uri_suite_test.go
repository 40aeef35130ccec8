package uri_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestURI(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "uri suite")
}
