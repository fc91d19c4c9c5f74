package service

import (
	"context"
	"encoding/json"
	"log"

	"qrorder/internal/domain"

	"github.com/segmentio/kafka-go"
)

// Consumer applies order_completed events to the sales ranking. The ranking is
// a derived view; the transactional total_sales column in Postgres is the
// source of truth.
type Consumer struct {
	Reader  *kafka.Reader
	Ranking SalesRanking
}

func NewConsumer(reader *kafka.Reader, ranking SalesRanking) *Consumer {
	return &Consumer{
		Reader:  reader,
		Ranking: ranking,
	}
}

func (c *Consumer) Start(ctx context.Context) {
	log.Println("Starting order event consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Printf("Error reading message: %v", err)
			continue
		}

		var evt domain.OrderEvent
		if err := json.Unmarshal(message.Value, &evt); err != nil {
			log.Printf("Error unmarshaling message: %v", err)
			continue
		}

		if evt.Type == domain.EventOrderCompleted {
			c.ProcessOrderCompleted(ctx, evt)
		}
	}
}

func (c *Consumer) ProcessOrderCompleted(ctx context.Context, evt domain.OrderEvent) {
	if evt.Type != domain.EventOrderCompleted {
		return
	}
	log.Printf("Processing completed order: OrderID=%d, RestaurantID=%d, lines=%d",
		evt.OrderID, evt.RestaurantID, len(evt.Lines))

	for _, line := range evt.Lines {
		if err := c.Ranking.IncrementSales(ctx, evt.RestaurantID, line.MenuID, line.Quantity); err != nil {
			log.Printf("Error updating sales ranking for menu %d: %v", line.MenuID, err)
		}
	}
}
