package service

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"strings"

	"go_5_vocab_drill/internal/config"
	"go_5_vocab_drill/internal/middleware"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
)

// sesSender は sesv2.Client のうち送信に使う部分
type sesSender interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

// SESMailer は AWS SES でテキストと HTML の両方を含むメールを送ります
type SESMailer struct {
	client  sesSender
	cfg     *config.SESConfig
	appName string
}

// NewSESMailer は auth_type に応じて認証情報を選び、SES クライアントを作ります
func NewSESMailer(ctx context.Context, cfg *config.Config) (*SESMailer, error) {
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.SES.Region)}

	switch cfg.SES.AuthType {
	case "static_credentials":
		if cfg.SES.AccessKeyID == "" || cfg.SES.SecretAccessKey == "" {
			return nil, fmt.Errorf("service.NewSESMailer: access_key_id and secret_access_key are required for static_credentials")
		}
		creds := credentials.NewStaticCredentialsProvider(cfg.SES.AccessKeyID, cfg.SES.SecretAccessKey, "")
		opts = append(opts, awsconfig.WithCredentialsProvider(creds))
	case "iam_role", "":
		// SDK の既定の認証情報チェーン (ECS タスクロール, インスタンスプロファイル)
	default:
		slog.Warn("Unknown SES auth_type, using default credential chain", "type", cfg.SES.AuthType)
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("service.NewSESMailer: %w", err)
	}
	return &SESMailer{client: sesv2.NewFromConfig(awsCfg), cfg: &cfg.SES, appName: cfg.App.Name}, nil
}

func (m *SESMailer) Send(ctx context.Context, to, subject, body string) error {
	logger := middleware.GetLogger(ctx)

	input, err := m.buildInput(to, subject, body)
	if err != nil {
		logger.Error("Failed to render email for SES", "error", err, "to", to)
		return err
	}
	out, err := m.client.SendEmail(ctx, input)
	if err != nil {
		logger.Error("Failed to send email via SES", "error", err, "to", to)
		return err
	}

	logger.Info("Email sent via SES", "to", to, "subject", subject, "message_id", aws.ToString(out.MessageId))
	return nil
}

var mailLayout = template.Must(template.New("mail").Parse(`<!DOCTYPE html>
<html lang="ja">
<body style="font-family: sans-serif; color: #333;">
<h2 style="color: #2b6cb0;">{{.AppName}}</h2>
{{range .Paragraphs}}<p>{{range $i, $line := .}}{{if $i}}<br>{{end}}{{$line}}{{end}}</p>
{{end}}<hr>
<p style="font-size: 12px; color: #888;">このメールは {{.AppName}} から自動送信されています。</p>
</body>
</html>
`))

// renderHTML は空行で段落を分け、本文を HTML に差し込みます
func renderHTML(appName, body string) (string, error) {
	var paragraphs [][]string
	for _, block := range strings.Split(strings.ReplaceAll(body, "\r\n", "\n"), "\n\n") {
		if block = strings.TrimSpace(block); block != "" {
			paragraphs = append(paragraphs, strings.Split(block, "\n"))
		}
	}

	var buf bytes.Buffer
	err := mailLayout.Execute(&buf, struct {
		AppName    string
		Paragraphs [][]string
	}{AppName: appName, Paragraphs: paragraphs})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (m *SESMailer) buildInput(to, subject, body string) (*sesv2.SendEmailInput, error) {
	html, err := renderHTML(m.appName, body)
	if err != nil {
		return nil, err
	}

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(m.cfg.From),
		Destination:      &types.Destination{ToAddresses: []string{to}},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(subject), Charset: aws.String("UTF-8")},
				Body: &types.Body{
					Text: &types.Content{Data: aws.String(body), Charset: aws.String("UTF-8")},
					Html: &types.Content{Data: aws.String(html), Charset: aws.String("UTF-8")},
				},
			},
		},
	}
	if m.cfg.ReplyTo != "" {
		input.ReplyToAddresses = []string{m.cfg.ReplyTo}
	}
	if m.cfg.ConfigurationSet != "" {
		input.ConfigurationSetName = aws.String(m.cfg.ConfigurationSet)
	}
	return input, nil
}
