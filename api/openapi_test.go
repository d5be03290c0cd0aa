package api_test

import (
	"context"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestOpenAPIDocument(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "OpenAPI Document Suite")
}

var _ = Describe("openapi.yml", func() {
	var doc *openapi3.T

	BeforeEach(func() {
		loader := openapi3.NewLoader()
		var err error
		doc, err = loader.LoadFromFile("openapi.yml")
		Expect(err).NotTo(HaveOccurred())
	})

	It("validates against the OpenAPI 3 schema", func() {
		Expect(doc.Validate(context.Background())).To(Succeed())
	})

	It("documents every resource group", func() {
		for _, path := range []string{
			"/auth/login",
			"/terapis",
			"/requirement/{id}/accept",
			"/tna",
			"/evaluasi",
			"/training/modules",
			"/statistics",
			"/users",
			"/roles",
			"/audit",
		} {
			Expect(doc.Paths.Find(path)).NotTo(BeNil(), "missing path %s", path)
		}
	})

	It("requires bearer auth by default", func() {
		Expect(doc.Security).NotTo(BeEmpty())
		scheme := doc.Components.SecuritySchemes["bearerAuth"]
		Expect(scheme).NotTo(BeNil())
		Expect(scheme.Value.Scheme).To(Equal("bearer"))
	})
})
