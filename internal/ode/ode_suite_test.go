package ode_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestOde(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "ODE Suite")
}
