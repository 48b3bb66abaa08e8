package notify

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"
)

// Message is a rendered notification ready for delivery.
type Message struct {
	Subject string
	Text    string
	HTML    string
}

const createdText = `A new bulk order has been created for your product category. Please review the RFQ and submit your offer.
Product Name: {{.ProductName}}
Quantity: {{.Quantity}}
Budget: {{.Budget}}
Delivery Deadline: {{.DeliveryDeadline.Format "2006-01-02"}}`

const createdHTML = `<!DOCTYPE html>
<html>
<body>
<p>A new bulk order has been created for your product category. Please review the RFQ and submit your offer.</p>
<ul>
<li>Product Name: {{.ProductName}}</li>
<li>Quantity: {{.Quantity}}</li>
<li>Budget: {{.Budget}}</li>
<li>Delivery Deadline: {{.DeliveryDeadline.Format "2006-01-02"}}</li>
</ul>
</body>
</html>`

const submittedText = `Dear {{.RecipientName}},

An offer has been submitted for your bulk order:
- Product Name: {{.ProductName}}
- Offered Price: {{.Price}}
- Delivery Time: {{.DeliveryTime}}
- Terms: {{.Terms}}

Please review the offer in your dashboard and take the necessary actions.`

const submittedHTML = `<!DOCTYPE html>
<html>
<body>
<p>Dear {{.RecipientName}},</p>
<p>An offer has been submitted for your bulk order:</p>
<ul>
<li>Product Name: {{.ProductName}}</li>
<li>Offered Price: {{.Price}}</li>
<li>Delivery Time: {{.DeliveryTime}}</li>
<li>Terms: {{.Terms}}</li>
</ul>
<p>Please review the offer in your dashboard and take the necessary actions.</p>
</body>
</html>`

const acceptedText = `Dear {{.RecipientName}},

Congratulations! Your offer for the bulk order has been accepted:
- Product Name: {{.ProductName}}
- Accepted Price: {{.Price}}
- Quantity: {{.Quantity}}
- Delivery Deadline: {{.DeliveryDeadline.Format "2006-01-02"}}

Please proceed with the necessary actions to fulfill this order.`

const acceptedHTML = `<!DOCTYPE html>
<html>
<body>
<p>Dear {{.RecipientName}},</p>
<p>Congratulations! Your offer for the bulk order has been accepted:</p>
<ul>
<li>Product Name: {{.ProductName}}</li>
<li>Accepted Price: {{.Price}}</li>
<li>Quantity: {{.Quantity}}</li>
<li>Delivery Deadline: {{.DeliveryDeadline.Format "2006-01-02"}}</li>
</ul>
<p>Please proceed with the necessary actions to fulfill this order.</p>
</body>
</html>`

type templatePair struct {
	subject string
	text    *texttemplate.Template
	html    *htmltemplate.Template
}

var templates = map[EventType]templatePair{
	EventBulkOrderCreated: {
		subject: "New Bulk Order Request - %s",
		text:    texttemplate.Must(texttemplate.New("created_text").Parse(createdText)),
		html:    htmltemplate.Must(htmltemplate.New("created_html").Parse(createdHTML)),
	},
	EventOfferSubmitted: {
		subject: "New Offer for Your Bulk Order - %s",
		text:    texttemplate.Must(texttemplate.New("submitted_text").Parse(submittedText)),
		html:    htmltemplate.Must(htmltemplate.New("submitted_html").Parse(submittedHTML)),
	},
	EventOfferAccepted: {
		subject: "Offer Accepted for Bulk Order - %s",
		text:    texttemplate.Must(texttemplate.New("accepted_text").Parse(acceptedText)),
		html:    htmltemplate.Must(htmltemplate.New("accepted_html").Parse(acceptedHTML)),
	},
}

// Render produces the subject and both bodies for an event.
func Render(event Event) (*Message, error) {
	pair, ok := templates[event.Type]
	if !ok {
		return nil, fmt.Errorf("unknown notification event %q", event.Type)
	}

	var text bytes.Buffer
	if err := pair.text.Execute(&text, event.Data); err != nil {
		return nil, fmt.Errorf("render text body: %w", err)
	}

	var html bytes.Buffer
	if err := pair.html.Execute(&html, event.Data); err != nil {
		return nil, fmt.Errorf("render html body: %w", err)
	}

	return &Message{
		Subject: fmt.Sprintf(pair.subject, event.Data.ProductName),
		Text:    text.String(),
		HTML:    html.String(),
	}, nil
}
