// Package email sends the post-payment confirmation email via Amazon SES.
// Delivery is best-effort: failures are logged and reported as a boolean,
// never propagated, because an email failure must not abort the request
// that triggered it.
package email

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	sestypes "github.com/aws/aws-sdk-go-v2/service/sesv2/types"
	"go.uber.org/zap"
)

const sendTimeout = 15 * time.Second

// Confirmation is the payload of one download-link email.
type Confirmation struct {
	Recipient    string
	DownloadLink string
	Price        string
}

// Sender delivers a confirmation and reports success. Implementations must
// not panic or return errors past this boundary.
type Sender interface {
	Send(c Confirmation) bool
}

// SESSender sends via Amazon SES. With a nil client (mock mode) it logs the
// intended send and reports success, so the pipeline can be exercised
// without live credentials.
type SESSender struct {
	client *sesv2.Client
	from   string
	logger *zap.Logger
}

func NewSESSender(region, from string, mockMode bool, logger *zap.Logger) (*SESSender, error) {
	s := &SESSender{from: from, logger: logger}
	if mockMode {
		return s, nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}
	s.client = sesv2.NewFromConfig(awsCfg)
	return s, nil
}

func (s *SESSender) Send(c Confirmation) bool {
	if s.client == nil {
		s.logger.Info("mock email: would send confirmation",
			zap.String("recipient", c.Recipient),
			zap.String("download_link", c.DownloadLink),
			zap.String("price", c.Price))
		return true
	}

	var htmlBody, textBody bytes.Buffer
	if err := confirmationHTML.Execute(&htmlBody, c); err != nil {
		s.logger.Error("failed to render confirmation email", zap.Error(err))
		return false
	}
	if err := confirmationText.Execute(&textBody, c); err != nil {
		s.logger.Error("failed to render confirmation email", zap.Error(err))
		return false
	}

	ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
	defer cancel()

	_, err := s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(s.from),
		Destination: &sestypes.Destination{
			ToAddresses: []string{c.Recipient},
		},
		Content: &sestypes.EmailContent{
			Simple: &sestypes.Message{
				Subject: &sestypes.Content{
					Data:    aws.String(confirmationSubject),
					Charset: aws.String("UTF-8"),
				},
				Body: &sestypes.Body{
					Html: &sestypes.Content{
						Data:    aws.String(htmlBody.String()),
						Charset: aws.String("UTF-8"),
					},
					Text: &sestypes.Content{
						Data:    aws.String(textBody.String()),
						Charset: aws.String("UTF-8"),
					},
				},
			},
		},
	})
	if err != nil {
		s.logger.Error("failed to send confirmation email",
			zap.String("recipient", c.Recipient),
			zap.Error(err))
		return false
	}

	s.logger.Info("confirmation email sent", zap.String("recipient", c.Recipient))
	return true
}
