package domain

import (
	"strings"

	"github.com/pkg/errors"
)

type Family string

const (
	FamilyBeta      Family = "beta"
	FamilyGamma     Family = "gamma"
	FamilyBinomial  Family = "binomial"
	FamilyBernoulli Family = "bernoulli"
)

// ParseFamily maps a case-insensitive family name to a Family.
func ParseFamily(s string) (Family, error) {
	switch f := Family(strings.ToLower(strings.TrimSpace(s))); f {
	case FamilyBeta, FamilyGamma, FamilyBinomial, FamilyBernoulli:
		return f, nil
	}
	return "", errors.Wrapf(ErrInvalidParameter, "unknown distribution family %q", s)
}

// Request is a distribution family together with its parameters. Only the
// types in this package implement it.
type Request interface {
	Family() Family
	isRequest()
}

// BetaRequest asks for a Beta(A, B) density.
type BetaRequest struct {
	A float64
	B float64
}

// GammaRequest asks for a Gamma density with shape A and rate B.
type GammaRequest struct {
	A float64
	B float64
}

// BinomialRequest asks for the mass function of N trials with success
// probability P.
type BinomialRequest struct {
	N int
	P float64
}

// BernoulliLikelihoodRequest asks for the likelihood of p given a Bernoulli
// sample summarized by its size and mean.
type BernoulliLikelihoodRequest struct {
	SampleSize int
	SampleMean float64
}

func (BetaRequest) Family() Family                { return FamilyBeta }
func (GammaRequest) Family() Family               { return FamilyGamma }
func (BinomialRequest) Family() Family            { return FamilyBinomial }
func (BernoulliLikelihoodRequest) Family() Family { return FamilyBernoulli }

func (BetaRequest) isRequest()                {}
func (GammaRequest) isRequest()               {}
func (BinomialRequest) isRequest()            {}
func (BernoulliLikelihoodRequest) isRequest() {}
