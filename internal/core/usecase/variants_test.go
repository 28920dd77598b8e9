package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/mhire/seev-services/internal/core/domain"
)

type rewriterFake struct {
	text string
	err  error
}

func (f *rewriterFake) Rewrite(context.Context, domain.RewriteRequest) (domain.BiasRewrite, error) {
	if f.err != nil {
		return domain.BiasRewrite{}, f.err
	}
	return domain.BiasRewrite{BiasFreeText: f.text}, nil
}

type variantModelFake struct {
	failOn map[string]bool
	calls  int
}

func (f *variantModelFake) GenerateVariant(_ context.Context, variantType, _, _, _ string) (string, error) {
	f.calls++
	if f.failOn[variantType] {
		return "", domain.WrapError(domain.ErrUpstream, "chat completion", errors.New("boom"))
	}
	return "variant of kind " + variantType, nil
}

func newVariantsUC(model *variantModelFake) *VariantsUseCase {
	analyzer := &analyzerFake{scores: map[string]int{"the text": 50}}
	return NewVariantsUseCase(analyzer, &rewriterFake{text: "cleaned text"}, model, nil)
}

func TestGenerateVariantsFullSet(t *testing.T) {
	model := &variantModelFake{}
	uc := newVariantsUC(model)

	set, err := uc.GenerateVariants(context.Background(), "doc-1", "the text")
	if err != nil {
		t.Fatalf("GenerateVariants() error = %v", err)
	}
	if set.DocumentID != "doc-1" {
		t.Fatalf("document id = %q", set.DocumentID)
	}
	if len(set.Variants) != 7 {
		t.Fatalf("got %d variants, want 7", len(set.Variants))
	}
	// the first variant is the rewrite output, not a generated one
	if set.Variants[0].Text != "cleaned text" {
		t.Fatalf("first variant text = %q", set.Variants[0].Text)
	}
	if model.calls != 6 {
		t.Fatalf("model called %d times, want 6", model.calls)
	}
}

func TestGenerateVariantsSkipsFailedKinds(t *testing.T) {
	model := &variantModelFake{failOn: map[string]bool{"Centrist version": true}}
	uc := newVariantsUC(model)

	set, err := uc.GenerateVariants(context.Background(), "doc-1", "the text")
	if err != nil {
		t.Fatalf("GenerateVariants() error = %v", err)
	}
	if len(set.Variants) != 6 {
		t.Fatalf("got %d variants, want 6 after one failure", len(set.Variants))
	}
	for _, v := range set.Variants {
		if v.VariantType == "Centrist version" {
			t.Fatalf("failed variant kept: %+v", v)
		}
	}
}

func TestGenerateVariantsEmptyText(t *testing.T) {
	uc := newVariantsUC(&variantModelFake{})

	_, err := uc.GenerateVariants(context.Background(), "doc-1", "   ")
	if !domain.IsKind(err, domain.ErrEmptyInput) {
		t.Fatalf("error = %v, want ErrEmptyInput", err)
	}
}

func TestGenerateVariantsFailsWhenRewriteFails(t *testing.T) {
	analyzer := &analyzerFake{scores: map[string]int{"the text": 50}}
	rewriteErr := domain.WrapError(domain.ErrUpstream, "chat completion", errors.New("down"))
	uc := NewVariantsUseCase(analyzer, &rewriterFake{err: rewriteErr}, &variantModelFake{}, nil)

	_, err := uc.GenerateVariants(context.Background(), "doc-1", "the text")
	if !domain.IsKind(err, domain.ErrUpstream) {
		t.Fatalf("error = %v, want ErrUpstream", err)
	}
}
