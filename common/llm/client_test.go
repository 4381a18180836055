package llm_test

import (
	"context"
	"encoding/json"
	"errors"

	"emcee.events/emcee/common/llm"
	"github.com/openai/openai-go"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type sampleResult struct {
	Caption string   `json:"caption"`
	Tags    []string `json:"tags"`
}

var _ = Describe("GenerateSchema", func() {
	It("reflects a strict inline schema", func() {
		schema := llm.GenerateSchema[sampleResult]()
		Expect(schema).NotTo(BeNil())

		raw, err := json.Marshal(schema)
		Expect(err).NotTo(HaveOccurred())

		var decoded map[string]any
		Expect(json.Unmarshal(raw, &decoded)).To(Succeed())
		Expect(decoded).To(HaveKey("properties"))
		Expect(decoded["additionalProperties"]).To(Equal(false))

		props, ok := decoded["properties"].(map[string]any)
		Expect(ok).To(BeTrue())
		Expect(props).To(HaveKey("caption"))
		Expect(props).To(HaveKey("tags"))
	})
})

var _ = Describe("IsRetryable", func() {
	var ctx context.Context

	BeforeEach(func() {
		ctx = context.Background()
	})

	It("is false for nil errors", func() {
		Expect(llm.IsRetryable(ctx, nil)).To(BeFalse())
	})

	It("is false when the context was cancelled", func() {
		Expect(llm.IsRetryable(ctx, context.Canceled)).To(BeFalse())
		Expect(llm.IsRetryable(ctx, context.DeadlineExceeded)).To(BeFalse())
	})

	It("retries rate limits", func() {
		err := &openai.Error{StatusCode: 429}
		Expect(llm.IsRetryable(ctx, err)).To(BeTrue())
	})

	It("retries server errors", func() {
		err := &openai.Error{StatusCode: 503}
		Expect(llm.IsRetryable(ctx, err)).To(BeTrue())
	})

	It("does not retry client errors", func() {
		err := &openai.Error{StatusCode: 400}
		Expect(llm.IsRetryable(ctx, err)).To(BeFalse())
	})

	It("retries plain network errors", func() {
		Expect(llm.IsRetryable(ctx, errors.New("connection reset"))).To(BeTrue())
	})
})

var _ = Describe("Temp", func() {
	It("returns a pointer to the given temperature", func() {
		t := llm.Temp(0.2)
		Expect(t).NotTo(BeNil())
		Expect(*t).To(Equal(0.2))
	})
})
