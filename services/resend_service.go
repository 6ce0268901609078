package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/yacbhl71/DELICES-DALGERIE-sub000/models"
)

// ResendClient sends transactional email via the Resend HTTP API.
type ResendClient struct {
	apiKey string
	from   string
}

// NewResendClient builds a client from the environment, or nil when no API
// key is configured (emails are then skipped, not failed).
func NewResendClient() *ResendClient {
	apiKey := os.Getenv("RESEND_API_KEY")
	if apiKey == "" {
		return nil
	}

	from := os.Getenv("RESEND_FROM_EMAIL")
	if from == "" {
		from = "commandes@delices-dalgerie.com"
	}

	return &ResendClient{apiKey: apiKey, from: from}
}

// OrderConfirmationData holds everything the confirmation email renders.
type OrderConfirmationData struct {
	CustomerName  string
	CustomerEmail string
	OrderNumber   string
	Locale        string
	Items         []models.OrderItem
	Subtotal      float64
	Discount      float64
	Total         float64
	Currency      string
}

var confirmationSubjects = map[string]string{
	models.LocaleFR: "Confirmation de votre commande %s",
	models.LocaleEN: "Your order confirmation %s",
	models.LocaleAR: "تأكيد طلبك %s",
}

var confirmationGreetings = map[string]string{
	models.LocaleFR: "Merci pour votre commande ! Voici le récapitulatif :",
	models.LocaleEN: "Thank you for your order! Here is your summary:",
	models.LocaleAR: "شكرا لطلبك! إليك الملخص:",
}

// SendOrderConfirmation emails the order summary in the customer's locale.
func (r *ResendClient) SendOrderConfirmation(data OrderConfirmationData) error {
	locale := data.Locale
	if _, ok := confirmationSubjects[locale]; !ok {
		locale = models.LocaleFR
	}

	var itemsRows strings.Builder
	for _, item := range data.Items {
		itemsRows.WriteString(fmt.Sprintf(`
      <tr>
        <td style="padding: 8px 0; font-size: 14px; color: #262622;">%s</td>
        <td style="padding: 8px 0; font-size: 14px; text-align: right; color: #262622;">%d</td>
        <td style="padding: 8px 0; font-size: 14px; text-align: right; color: #262622;">%.2f %s</td>
        <td style="padding: 8px 0; font-size: 14px; text-align: right; font-weight: 600; color: #262622;">%.2f %s</td>
      </tr>
    `, item.ProductName.Resolve(locale), item.Quantity,
			item.Price, data.Currency, item.Subtotal, data.Currency))
	}

	discountRow := ""
	if data.Discount > 0 {
		discountRow = fmt.Sprintf(`
    <tr>
      <td colspan="3" style="padding: 6px 0; font-size: 14px; color: #79776d;">Remise</td>
      <td style="padding: 6px 0; font-size: 14px; text-align: right; color: #262622;">-%.2f %s</td>
    </tr>
    `, data.Discount, data.Currency)
	}

	html := fmt.Sprintf(`
<!DOCTYPE html>
<html lang="%s">
<head><meta charset="UTF-8"></head>
<body style="margin: 0; padding: 16px; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', 'Roboto', sans-serif; background-color: #fafaf7; line-height: 1.5;">
  <table width="100%%" cellpadding="0" cellspacing="0" border="0" style="max-width: 640px; margin: auto; background: #ffffff; padding: 24px;">
    <tr>
      <td style="border-bottom: 1px solid #e5e5e0; padding-bottom: 16px;">
        <h1 style="margin: 0; font-size: 24px; font-weight: bold; color: #6B8E23;">Délices et Trésors d'Algérie</h1>
      </td>
    </tr>
    <tr>
      <td style="padding: 16px 0;">
        <p style="margin: 0; font-size: 16px; color: #262622;">%s, %s</p>
        <p style="margin: 8px 0 0; font-size: 14px; color: #79776d;">N° %s</p>
      </td>
    </tr>
    <tr>
      <td>
        <table width="100%%" cellpadding="0" cellspacing="0" border="0">
          %s
          %s
          <tr>
            <td colspan="3" style="padding: 12px 0; font-size: 16px; font-weight: bold; color: #262622; border-top: 1px solid #e5e5e0;">Total</td>
            <td style="padding: 12px 0; font-size: 16px; font-weight: bold; text-align: right; color: #262622; border-top: 1px solid #e5e5e0;">%.2f %s</td>
          </tr>
        </table>
      </td>
    </tr>
  </table>
</body>
</html>`,
		locale, data.CustomerName, confirmationGreetings[locale], data.OrderNumber,
		itemsRows.String(), discountRow, data.Total, data.Currency)

	subject := fmt.Sprintf(confirmationSubjects[locale], data.OrderNumber)
	return r.send(data.CustomerEmail, subject, html)
}

func (r *ResendClient) send(to, subject, html string) error {
	payload := map[string]interface{}{
		"from":    r.from,
		"to":      []string{to},
		"subject": subject,
		"html":    html,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal email payload: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, "https://api.resend.com/emails", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+r.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		raw, _ := io.ReadAll(resp.Body)
		log.Printf("[email.send] resend rejected email: %s", string(raw))
		return fmt.Errorf("resend API returned status %d", resp.StatusCode)
	}
	return nil
}
