package ingest_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	"github.com/scusemua/ycsb-report/m/v2/internal/domain"
	"github.com/scusemua/ycsb-report/m/v2/internal/ingest"
)

const twoClients = "runtime,client0,client1,summary,\n" +
	"2000000000ns,100,150,Throughput,42\n" +
	",200,250,,\n"

var _ = Describe("Ingestor", func() {
	atom := zap.NewAtomicLevelAt(zap.DebugLevel)
	var ingestor *ingest.Ingestor

	BeforeEach(func() {
		ingestor = ingest.NewIngestor(domain.NewLogger(&atom))
	})

	It("Will load a file keeping its header order", func() {
		path := writeFixture("a.csv", twoClients)

		file, err := ingestor.LoadFile(path)
		Expect(err).To(BeNil())
		Expect(file.Path).To(Equal(path))
		Expect(file.Header).To(Equal([]string{"runtime", "client0", "client1", "summary", ""}))
		Expect(file.Len()).To(Equal(2))
		Expect(file.Rows[0].Keys()).To(Equal(file.Header))

		value, ok := file.Rows[1].Get("client1")
		Expect(ok).To(BeTrue())
		Expect(value).To(Equal("250"))

		value, ok = file.Rows[0].Get("")
		Expect(ok).To(BeTrue())
		Expect(value).To(Equal("42"))
	})

	It("Will split client and metadata columns", func() {
		file, err := ingestor.LoadFile(writeFixture("a.csv", twoClients))
		Expect(err).To(BeNil())

		Expect(file.ClientColumns("client")).To(Equal([]string{"client0", "client1"}))
		Expect(file.MetadataColumns("client")).To(Equal([]string{"runtime", "summary", ""}))
	})

	It("Will fail when the file does not exist", func() {
		_, err := ingestor.LoadFile("/nonexistent/a.csv")
		Expect(errors.Is(err, domain.ErrInputNotFound)).To(BeTrue())
	})

	It("Will fail on an empty file", func() {
		_, err := ingestor.LoadFile(writeFixture("empty.csv", ""))
		Expect(errors.Is(err, domain.ErrMalformedInput)).To(BeTrue())
	})

	It("Will fail on a file with a header but no rows", func() {
		_, err := ingestor.LoadFile(writeFixture("header.csv", "runtime,client0\n"))
		Expect(errors.Is(err, domain.ErrMalformedInput)).To(BeTrue())
	})

	It("Will fail on rows that do not match the header", func() {
		_, err := ingestor.LoadFile(writeFixture("ragged.csv", "runtime,client0\n1ns,100\n2ns\n"))
		Expect(errors.Is(err, domain.ErrMalformedInput)).To(BeTrue())
	})

	It("Will require at least one input", func() {
		_, err := ingestor.LoadFiles(nil)
		Expect(errors.Is(err, domain.ErrUsage)).To(BeTrue())
	})

	It("Will record the canonical row count", func() {
		a := writeFixture("a.csv", twoClients)
		b := writeFixture("b.csv", twoClients)

		set, err := ingestor.LoadFiles([]string{a, b})
		Expect(err).To(BeNil())
		Expect(set.RowCount).To(Equal(2))
		Expect(set.Files).To(HaveLen(2))
		Expect(set.Files[1].Path).To(Equal(b))
	})

	It("Will reject files whose row counts differ", func() {
		a := writeFixture("a.csv", twoClients)
		b := writeFixture("b.csv", "runtime,client0\n1ns,100\n")

		_, err := ingestor.LoadFiles([]string{a, b})
		Expect(errors.Is(err, domain.ErrRowCountMismatch)).To(BeTrue())
	})
})
