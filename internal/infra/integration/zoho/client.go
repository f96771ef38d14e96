package zoho

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

// Client talks to the Zoho Invoice v3 API.
type Client struct {
	baseURL    string
	oauthToken string
	orgID      string
	http       *http.Client
}

func NewClient(baseURL, oauthToken, orgID string) *Client {
	return &Client{
		baseURL:    baseURL,
		oauthToken: oauthToken,
		orgID:      orgID,
		http:       &http.Client{Timeout: 10 * time.Second},
	}
}

// FindContactByEmail lists the organization's contacts and returns the id of
// the one whose primary email matches, or "" when none does.
func (c *Client) FindContactByEmail(email string) (string, error) {
	req, err := http.NewRequest("GET", c.baseURL+"/contacts", nil)
	if err != nil {
		return "", err
	}
	c.setHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("zoho list contacts request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		log.Printf("❌ zoho list contacts (status %d): %s", resp.StatusCode, string(body))
		return "", fmt.Errorf("zoho list contacts rejected (status %d)", resp.StatusCode)
	}

	var response listContactsResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return "", fmt.Errorf("zoho list contacts decode failed: %w", err)
	}

	for _, contact := range response.Contacts {
		if contact.Email == email {
			return contact.ContactID, nil
		}
	}
	return "", nil
}

// CreateContact registers a new customer with one primary contact person
// and returns its id.
func (c *Client) CreateContact(input CreateContactInput) (string, error) {
	payload := createContactRequest{
		ContactName: input.Name,
		ContactPersons: []contactPerson{
			{Email: input.Email, Phone: input.Phone, IsPrimaryContact: true},
		},
	}

	var response createContactResponse
	if err := c.post("/contacts", payload, &response); err != nil {
		return "", err
	}
	return response.Contact.ContactID, nil
}

// CreateInvoice creates a single-line-item invoice dated today and returns
// the invoice id. The line item carries the package as the item reference
// and "<title> Date: <tourDate>" as the description line.
func (c *Client) CreateInvoice(input CreateInvoiceInput) (string, error) {
	payload := createInvoiceRequest{
		CustomerID: input.CustomerID,
		Date:       time.Now().Format("2006-01-02"),
		LineItems: []lineItem{
			{
				ItemID:   input.PackageID,
				Name:     fmt.Sprintf("%s Date: %s", input.PackageTitle, input.TourDate),
				Rate:     input.Rate,
				Quantity: input.Quantity,
			},
		},
	}

	var response createInvoiceResponse
	if err := c.post("/invoices", payload, &response); err != nil {
		return "", err
	}
	return response.Invoice.InvoiceID, nil
}

// EmailInvoice triggers Zoho's invoice mailer for an already-created invoice.
func (c *Client) EmailInvoice(input EmailInvoiceInput) error {
	payload := emailInvoiceRequest{
		SendFromOrgEmailID: true,
		ToMailIDs:          []string{input.ToEmail},
		CCMailIDs:          []string{input.CCEmail},
		Subject:            fmt.Sprintf("Invoice from Maa Jashoda Enterprise for Booking: %s", input.PackageTitle),
		Body:               "Dear Customer, Thank You for Booking!",
	}
	return c.post("/invoices/"+input.InvoiceID+"/email", payload, nil)
}

func (c *Client) post(path string, payload interface{}, out interface{}) error {
	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("zoho marshal failed: %w", err)
	}

	req, err := http.NewRequest("POST", c.baseURL+path, bytes.NewBuffer(jsonBody))
	if err != nil {
		return err
	}
	c.setHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("zoho request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		log.Printf("❌ zoho POST %s (status %d): %s", path, resp.StatusCode, string(body))
		return fmt.Errorf("zoho rejected %s (status %d)", path, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("zoho decode failed: %w", err)
	}
	return nil
}

// setHeaders centralizes the auth headers every Zoho call needs.
func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Zoho-oauthtoken "+c.oauthToken)
	req.Header.Set("X-com-zoho-invoice-organizationid", c.orgID)
	req.Header.Set("Content-Type", "application/json")
}
