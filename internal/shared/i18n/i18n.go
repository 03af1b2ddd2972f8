// Package i18n 提供面向用户消息的本地化
package i18n

import (
	"context"
	"fmt"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

type languageKey struct{}

// WithLanguage 将请求语言（逗号分隔的语言标签，按优先级排列）放入 context
func WithLanguage(ctx context.Context, lang string) context.Context {
	return context.WithValue(ctx, languageKey{}, lang)
}

// LanguageFrom 读取 context 中的请求语言
func LanguageFrom(ctx context.Context) string {
	lang, _ := ctx.Value(languageKey{}).(string)
	return lang
}

// Catalog 某一语言下的消息集合
type Catalog struct {
	Tag      language.Tag
	Messages []*goi18n.Message
}

// Translator 基于 go-i18n bundle 的翻译器
type Translator struct {
	bundle      *goi18n.Bundle
	defaultLang string
}

// NewTranslator 创建翻译器，defaultLang 为请求未指定语言时使用的语言
func NewTranslator(defaultLang string, catalogs ...Catalog) (*Translator, error) {
	bundle := goi18n.NewBundle(language.English)
	for _, c := range catalogs {
		if err := bundle.AddMessages(c.Tag, c.Messages...); err != nil {
			return nil, fmt.Errorf("failed to add %s messages: %w", c.Tag, err)
		}
	}
	if defaultLang == "" {
		defaultLang = language.English.String()
	}
	return &Translator{bundle: bundle, defaultLang: defaultLang}, nil
}

// T 翻译消息，找不到翻译时返回消息ID
func (t *Translator) T(ctx context.Context, messageID string, data map[string]interface{}) string {
	cfg := &goi18n.LocalizeConfig{
		MessageID:    messageID,
		TemplateData: data,
	}
	msg, err := goi18n.NewLocalizer(t.bundle, LanguageFrom(ctx), t.defaultLang).Localize(cfg)
	if err == nil {
		return msg
	}
	// 请求语言缺少该消息时回退到英文
	if msg, err := goi18n.NewLocalizer(t.bundle, language.English.String()).Localize(cfg); err == nil {
		return msg
	}
	return messageID
}
