package twilio

import "encoding/xml"

// MessageResponse is the Twilio Messages API response body.
type MessageResponse struct {
	SID          string `json:"sid"`
	Status       string `json:"status"`
	ErrorCode    *int   `json:"error_code"`
	ErrorMessage string `json:"error_message"`
}

// MessagingResponse is the TwiML envelope returned to a WhatsApp webhook.
type MessagingResponse struct {
	XMLName  xml.Name `xml:"Response"`
	Messages []string `xml:"Message"`
}

// NewMessagingResponse builds a TwiML response with the given messages.
func NewMessagingResponse(messages ...string) *MessagingResponse {
	return &MessagingResponse{Messages: messages}
}

// Render serializes the TwiML document with the XML header.
func (r *MessagingResponse) Render() (string, error) {
	body, err := xml.Marshal(r)
	if err != nil {
		return "", err
	}
	return xml.Header + string(body), nil
}
