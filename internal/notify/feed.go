// internal/notify/feed.go
package notify

import (
	"context"
	"time"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"

	"internship-allocator/internal/common/aws"
	"internship-allocator/internal/common/logger"
	"internship-allocator/internal/store"
)

// FeedNotifier writes department events to the in-memory notification feed
// and, when configured, fans them out to an SNS topic. It is the engine's
// Notifier implementation.
type FeedNotifier struct {
	feed     *store.NotificationFeed
	sns      *aws.SNSClient
	topicARN string
	logger   logger.Logger
}

func NewFeedNotifier(feed *store.NotificationFeed, snsClient *aws.SNSClient, topicARN string, log logger.Logger) *FeedNotifier {
	return &FeedNotifier{
		feed:     feed,
		sns:      snsClient,
		topicARN: topicARN,
		logger:   log.WithFields(map[string]interface{}{"component": "notifier"}),
	}
}

// Notify must not block: the engine calls it under a posting lock, so the SNS
// publish runs on its own goroutine.
func (n *FeedNotifier) Notify(departmentID, message string) {
	n.feed.Publish(departmentID, message)

	if n.sns == nil || n.topicARN == "" {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_, err := n.sns.Publish(ctx, &sns.PublishInput{
			TopicArn: awssdk.String(n.topicARN),
			Subject:  awssdk.String("internship-allocator: " + departmentID),
			Message:  awssdk.String(message),
		})
		if err != nil {
			n.logger.Warn("sns publish failed", map[string]interface{}{
				"departmentId": departmentID,
				"error":        err,
			})
		}
	}()
}
