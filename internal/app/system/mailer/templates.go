// internal/app/system/mailer/templates.go
package mailer

import (
	"bytes"
	"html/template"
)

// ConsultationAlertData contains the data for the office notification
// sent when a consultation request is submitted.
type ConsultationAlertData struct {
	Name        string
	Email       string
	Phone       string // "" renders as "Not provided"
	ServiceName string
	Message     string
	Reference   string
	SubmittedAt string // formatted for Europe/London
}

// ConsultationAlertEmail generates both plain text and HTML versions of
// the admin notification for a new consultation request.
func ConsultationAlertEmail(data ConsultationAlertData) (textBody, htmlBody string) {
	phone := data.Phone
	if phone == "" {
		phone = "Not provided"
	}

	// Plain text version
	textBody = "New Consultation Request - Bimaah International\n\n" +
		"Client Information:\n" +
		"Name: " + data.Name + "\n" +
		"Email: " + data.Email + "\n" +
		"Phone: " + phone + "\n" +
		"Service Requested: " + data.ServiceName + "\n\n" +
		"Client Message:\n" + data.Message + "\n\n" +
		"Next Steps:\n" +
		"Please respond to this consultation request within 24 hours at " + data.Email
	if data.Phone != "" {
		textBody += " or call " + data.Phone
	}
	textBody += ".\n\n" +
		"Reference: " + data.Reference + "\n" +
		"Submitted: " + data.SubmittedAt

	// HTML version
	var buf bytes.Buffer
	consultationAlertHTMLTmpl.Execute(&buf, data)
	htmlBody = buf.String()

	return textBody, htmlBody
}

// ConsultationAckData contains the data for the confirmation email sent
// back to the person who submitted a consultation request.
type ConsultationAckData struct {
	Name        string
	ServiceName string
	Message     string
	Reference   string
}

// ConsultationAckEmail generates both plain text and HTML versions of
// the client confirmation email.
func ConsultationAckEmail(data ConsultationAckData) (textBody, htmlBody string) {
	// Plain text version
	textBody = "Thank You for Contacting Bimaah International\n\n" +
		"Dear " + data.Name + ",\n\n" +
		"Thank you for reaching out to us. We have received your consultation request " +
		"and one of our advisers will get back to you within 24 hours.\n\n" +
		"Your Request Summary:\n" +
		"Service: " + data.ServiceName + "\n" +
		"Your Message: " + data.Message + "\n" +
		"Reference: " + data.Reference + "\n\n" +
		"What Happens Next?\n" +
		"1. Our team will review your request\n" +
		"2. An adviser will contact you within 24 hours\n" +
		"3. We'll schedule a free consultation at your convenience\n\n" +
		"Contact Information:\n" +
		"Phone: 03334040491\n" +
		"Email: info@bimaahinternationalltd.com\n" +
		"Address: 10 Toronto Road, Tilbury, RM18 7RL United Kingdom\n\n" +
		"Bimaah International Ltd\n" +
		"Your Rights. Your Voice. Our Support.\n" +
		"Registration Number: N202537994\n" +
		"Authorised and regulated by the Immigration Advice Authority"

	// HTML version
	var buf bytes.Buffer
	consultationAckHTMLTmpl.Execute(&buf, data)
	htmlBody = buf.String()

	return textBody, htmlBody
}

var consultationAlertHTMLTmpl = template.Must(template.New("consultation_alert").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>New Consultation Request</title>
</head>
<body style="margin: 0; padding: 0; font-family: Arial, sans-serif; background-color: #ffffff;">
  <div style="max-width: 600px; margin: 0 auto;">
    <h2 style="color: #1C478A; border-bottom: 2px solid #1A7EB9; padding-bottom: 10px;">
      New Consultation Request - Bimaah International
    </h2>
    <div style="background-color: #f8f9fa; padding: 20px; border-radius: 8px; margin: 20px 0;">
      <h3 style="color: #1A7EB9; margin-top: 0;">Client Information</h3>
      <p><strong>Name:</strong> {{.Name}}</p>
      <p><strong>Email:</strong> {{.Email}}</p>
      <p><strong>Phone:</strong> {{if .Phone}}{{.Phone}}{{else}}Not provided{{end}}</p>
      <p><strong>Service Requested:</strong> {{.ServiceName}}</p>
    </div>
    <div style="background-color: #e8f4fd; padding: 15px; border-radius: 8px; margin: 20px 0;">
      <h3 style="color: #1A7EB9; margin-top: 0;">Client Message</h3>
      <p style="margin: 0; color: #333; white-space: pre-wrap;">{{.Message}}</p>
    </div>
    <div style="background-color: #fff3cd; padding: 15px; border-radius: 8px; margin: 20px 0; border-left: 4px solid #ffc107;">
      <h4 style="color: #856404; margin-top: 0;">Next Steps</h4>
      <p style="margin: 0; color: #856404; font-size: 14px;">
        Please respond to this consultation request within 24 hours at <strong>{{.Email}}</strong>{{if .Phone}} or call <strong>{{.Phone}}</strong>{{end}}.
      </p>
    </div>
    <div style="color: #666; font-size: 12px; margin-top: 20px; padding-top: 20px; border-top: 1px solid #ddd;">
      <p style="margin: 0;">Reference: {{.Reference}}</p>
      <p style="margin: 0;">Submitted: {{.SubmittedAt}}</p>
    </div>
  </div>
</body>
</html>`))

var consultationAckHTMLTmpl = template.Must(template.New("consultation_ack").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Consultation Request Received</title>
</head>
<body style="margin: 0; padding: 0; font-family: Arial, sans-serif; background-color: #ffffff;">
  <div style="max-width: 600px; margin: 0 auto;">
    <h2 style="color: #1C478A; border-bottom: 2px solid #1A7EB9; padding-bottom: 10px;">
      Thank You for Contacting Bimaah International
    </h2>
    <div style="background-color: #f8f9fa; padding: 20px; border-radius: 8px; margin: 20px 0;">
      <h3 style="color: #1A7EB9; margin-top: 0;">Dear {{.Name}},</h3>
      <p>Thank you for reaching out to us. We have received your consultation request and one of our advisers will get back to you within 24 hours.</p>
    </div>
    <div style="background-color: #e8f4fd; padding: 15px; border-radius: 8px; margin: 20px 0;">
      <h3 style="color: #1A7EB9; margin-top: 0;">Your Request Summary</h3>
      <p style="margin: 5px 0;"><strong>Service:</strong> {{.ServiceName}}</p>
      <p style="margin: 5px 0;"><strong>Your Message:</strong></p>
      <p style="margin: 5px 0; color: #666; white-space: pre-wrap;">{{.Message}}</p>
      <p style="margin: 5px 0;"><strong>Reference:</strong> {{.Reference}}</p>
    </div>
    <div style="background-color: #d4edda; padding: 15px; border-radius: 8px; margin: 20px 0; border-left: 4px solid #28a745;">
      <h4 style="color: #155724; margin-top: 0;">What Happens Next?</h4>
      <p style="margin: 0; color: #155724; font-size: 14px;">
        1. Our team will review your request<br>
        2. An adviser will contact you within 24 hours<br>
        3. We'll schedule a free consultation at your convenience
      </p>
    </div>
    <div style="background-color: #f8f9fa; padding: 15px; border-radius: 8px; margin: 20px 0;">
      <h4 style="color: #1C478A; margin-top: 0;">Contact Information</h4>
      <p style="margin: 5px 0; color: #666;">
        <strong>Phone:</strong> <a href="tel:03334040491" style="color: #1A7EB9; text-decoration: none;">03334040491</a><br>
        <strong>Email:</strong> <a href="mailto:info@bimaahinternationalltd.com" style="color: #1A7EB9; text-decoration: none;">info@bimaahinternationalltd.com</a><br>
        <strong>Address:</strong> 10 Toronto Road, Tilbury, RM18 7RL United Kingdom
      </p>
    </div>
    <div style="color: #666; font-size: 12px; margin-top: 20px; padding-top: 20px; border-top: 1px solid #ddd; text-align: center;">
      <p style="margin: 5px 0;"><strong>Bimaah International Ltd</strong></p>
      <p style="margin: 5px 0;">Your Rights. Your Voice. Our Support.</p>
      <p style="margin: 5px 0;">Registration Number: N202537994</p>
      <p style="margin: 15px 0 5px 0; font-size: 11px;">
        Authorised and regulated by the Immigration Advice Authority
      </p>
    </div>
  </div>
</body>
</html>`))
