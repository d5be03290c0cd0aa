package internal

import (
	"net/url"
	"testing"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

func TestInternal(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Internal Helpers Suite")
}

var _ = ginkgo.Describe("Pagination", func() {
	ginkgo.It("rounds total pages up", func() {
		p := NewPagination(1, 10, 21)
		gomega.Expect(p.TotalPages).To(gomega.Equal(3))

		p = NewPagination(1, 10, 20)
		gomega.Expect(p.TotalPages).To(gomega.Equal(2))
	})

	ginkgo.It("reports zero pages for an empty listing", func() {
		gomega.Expect(NewPagination(1, 10, 0).TotalPages).To(gomega.BeZero())
	})

	ginkgo.It("normalizes non-positive page and limit", func() {
		p := NewPagination(0, -5, 7)
		gomega.Expect(p.Page).To(gomega.Equal(1))
		gomega.Expect(p.Limit).To(gomega.Equal(10))
		gomega.Expect(p.TotalPages).To(gomega.Equal(1))
	})

	ginkgo.It("converts page and limit into a row offset", func() {
		gomega.Expect(NewPagination(3, 25, 100).Offset()).To(gomega.Equal(50))
		gomega.Expect(NewPagination(1, 10, 100).Offset()).To(gomega.BeZero())
	})
})

var _ = ginkgo.Describe("PageParams", func() {
	parse := func(raw string) url.Values {
		q, err := url.ParseQuery(raw)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		return q
	}

	ginkgo.It("defaults to the first page of ten", func() {
		page, limit := PageParams(parse(""))
		gomega.Expect(page).To(gomega.Equal(1))
		gomega.Expect(limit).To(gomega.Equal(10))
	})

	ginkgo.It("reads explicit values", func() {
		page, limit := PageParams(parse("page=4&limit=50"))
		gomega.Expect(page).To(gomega.Equal(4))
		gomega.Expect(limit).To(gomega.Equal(50))
	})

	ginkgo.It("ignores garbage and out-of-range values", func() {
		page, limit := PageParams(parse("page=abc&limit=-1"))
		gomega.Expect(page).To(gomega.Equal(1))
		gomega.Expect(limit).To(gomega.Equal(10))

		_, limit = PageParams(parse("limit=101"))
		gomega.Expect(limit).To(gomega.Equal(10))
	})
})
