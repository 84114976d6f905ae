// Package ui holds the presentational primitives the site is composed from.
//
// Every primitive takes functional options. Class and Child work on any
// primitive; the rest are specific to one config type.
package ui

import "github.com/vango-go/vango/pkg/vdom"

// NodeOption is anything a vdom element builder accepts; here always a
// *vdom.VNode child.
type NodeOption = any

// BaseConfig is embedded in every component config.
type BaseConfig struct {
	Classes []string
	Options []NodeOption // attributes and children, in the order given
}

// ConfigProvider lets the generic options reach the embedded BaseConfig.
type ConfigProvider interface {
	GetBase() *BaseConfig
}

// Option modifies a component config.
type Option[T ConfigProvider] func(T)

// Class adds utility classes, merged via CN on render.
func Class[T ConfigProvider](c string) Option[T] {
	return func(cfg T) {
		base := cfg.GetBase()
		base.Classes = append(base.Classes, c)
	}
}

// Child appends child nodes. Nil nodes are dropped.
func Child[T ConfigProvider](nodes ...*vdom.VNode) Option[T] {
	return func(cfg T) {
		base := cfg.GetBase()
		for _, n := range nodes {
			if n != nil {
				base.Options = append(base.Options, n)
			}
		}
	}
}

func apply[T ConfigProvider](cfg T, opts []Option[T]) T {
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// element renders base into el with the slot marker and the default classes
// ahead of user classes. vdom attributes are last-wins, so the class list is
// merged once here.
func (b *BaseConfig) element(el func(...any) *vdom.VNode, slot, defaults string, extra ...any) *vdom.VNode {
	renderOpts := make([]any, 0, len(b.Options)+len(extra)+2)
	if slot != "" {
		renderOpts = append(renderOpts, vdom.Data("slot", slot))
	}
	renderOpts = append(renderOpts, vdom.Class(CN(defaults, joinClasses(b.Classes))))
	renderOpts = append(renderOpts, extra...)
	renderOpts = append(renderOpts, b.Options...)
	return el(renderOpts...)
}
