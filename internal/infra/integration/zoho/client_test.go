package zoho

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindContactByEmail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Zoho-oauthtoken tok", r.Header.Get("Authorization"))
		assert.Equal(t, "906926183", r.Header.Get("X-com-zoho-invoice-organizationid"))
		json.NewEncoder(w).Encode(listContactsResponse{
			Contacts: []contactSummary{
				{ContactID: "C1", Email: "r@x.com"},
				{ContactID: "C2", Email: "other@x.com"},
			},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "tok", "906926183")

	id, err := client.FindContactByEmail("r@x.com")
	assert.NoError(t, err)
	assert.Equal(t, "C1", id)

	id, err = client.FindContactByEmail("nobody@x.com")
	assert.NoError(t, err)
	assert.Equal(t, "", id)
}

func TestCreateInvoiceLineItem(t *testing.T) {
	var got createInvoiceRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&got)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"invoice": map[string]string{"invoice_id": "INV-77"},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "tok", "906926183")

	id, err := client.CreateInvoice(CreateInvoiceInput{
		CustomerID:   "C1",
		PackageID:    "P1",
		PackageTitle: "Goa Trip",
		TourDate:     "2025-01-10",
		Rate:         5000,
		Quantity:     2,
	})

	assert.NoError(t, err)
	assert.Equal(t, "INV-77", id)
	assert.Equal(t, "C1", got.CustomerID)
	assert.Len(t, got.LineItems, 1)
	assert.Equal(t, "P1", got.LineItems[0].ItemID)
	assert.Equal(t, "Goa Trip Date: 2025-01-10", got.LineItems[0].Name)
	assert.Equal(t, float64(5000), got.LineItems[0].Rate)
	assert.Equal(t, 2, got.LineItems[0].Quantity)
	assert.NotEmpty(t, got.Date)
}

func TestEmailInvoiceRecipients(t *testing.T) {
	var got emailInvoiceRequest
	var path string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		json.NewDecoder(r.Body).Decode(&got)
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "tok", "906926183")

	err := client.EmailInvoice(EmailInvoiceInput{
		InvoiceID:    "INV-77",
		ToEmail:      "r@x.com",
		CCEmail:      "ops@peacetrail.in",
		PackageTitle: "Goa Trip",
	})

	assert.NoError(t, err)
	assert.Equal(t, "/invoices/INV-77/email", path)
	assert.Equal(t, []string{"r@x.com"}, got.ToMailIDs)
	assert.Equal(t, []string{"ops@peacetrail.in"}, got.CCMailIDs)
	assert.True(t, strings.Contains(got.Subject, "Goa Trip"))
	assert.True(t, got.SendFromOrgEmailID)
}

func TestClientSurfacesAPIRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"code":57,"message":"invalid token"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "bad", "906926183")

	_, err := client.FindContactByEmail("r@x.com")
	assert.Error(t, err)

	_, err = client.CreateContact(CreateContactInput{Name: "R", Email: "r@x.com", Phone: "9"})
	assert.Error(t, err)
}
