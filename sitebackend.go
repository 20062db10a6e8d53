// Package sitebackend re-exports the public document generation API.
package sitebackend

import (
	"github.com/Zouhir-Harch/site-backend/pkg/api"
)

type Generator = api.Generator
type Options = api.Options
type Option = api.Option

func New() *Generator { return api.New() }
func NewWithOptions(options Options, opts ...Option) *Generator {
	return api.NewWithOptions(options, opts...)
}
func DefaultOptions() Options { return api.DefaultOptions() }

var (
	WithCreator = api.WithCreator
	WithAuthor  = api.WithAuthor
)
