package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/beracah/beracah-BE/internal/event"
	"github.com/gin-gonic/gin"
)

//	@Summary		Stream order events via Server-Sent Events
//	@Description	Establishes an SSE connection so the dashboard refreshes without polling
//	@Tags			orders
//	@Produce		text/event-stream
//	@Success		200	{string}	string	"Event stream. Data is sent as 'event: {eventType}\ndata: {jsonData}'"
//	@Security		accessToken
//	@Router			/orders/stream [get]
func (server *Server) streamOrderEvents(c *gin.Context) {
	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Status(http.StatusOK)

	clientChan := make(chan event.Event)
	server.eventSender.Register(event.TopicOrders, clientChan)
	defer server.eventSender.Unregister(event.TopicOrders, clientChan)

	for {
		select {
		case ev := <-clientChan:
			data, _ := json.Marshal(ev.Data)
			fmt.Fprintf(c.Writer, "event: %s\ndata: %s\n\n", ev.Type, data)
			c.Writer.Flush()
		case <-c.Request.Context().Done():
			return
		}
	}
}
