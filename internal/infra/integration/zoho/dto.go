package zoho

// --- Inputs the rest of the app hands the client ---

type CreateContactInput struct {
	Name  string
	Email string
	Phone string
}

type CreateInvoiceInput struct {
	CustomerID   string
	PackageID    string
	PackageTitle string
	TourDate     string
	Rate         float64
	Quantity     int
}

type EmailInvoiceInput struct {
	InvoiceID    string
	ToEmail      string
	CCEmail      string
	PackageTitle string
}

// --- Payloads sent to Zoho ---

type createContactRequest struct {
	ContactName    string          `json:"contact_name"`
	ContactPersons []contactPerson `json:"contact_persons"`
}

type contactPerson struct {
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	IsPrimaryContact bool   `json:"is_primary_contact"`
}

type createInvoiceRequest struct {
	CustomerID string     `json:"customer_id"`
	Date       string     `json:"date"`
	LineItems  []lineItem `json:"line_items"`
}

type lineItem struct {
	ItemID   string  `json:"item_id"`
	Name     string  `json:"name"`
	Rate     float64 `json:"rate"`
	Quantity int     `json:"quantity"`
}

type emailInvoiceRequest struct {
	SendFromOrgEmailID bool     `json:"send_from_org_email_id"`
	ToMailIDs          []string `json:"to_mail_ids"`
	CCMailIDs          []string `json:"cc_mail_ids"`
	Subject            string   `json:"subject"`
	Body               string   `json:"body"`
}

// --- Responses Zoho sends back ---

type listContactsResponse struct {
	Contacts []contactSummary `json:"contacts"`
}

type contactSummary struct {
	ContactID string `json:"contact_id"`
	Email     string `json:"email"`
}

type createContactResponse struct {
	Contact struct {
		ContactID string `json:"contact_id"`
	} `json:"contact"`
}

type createInvoiceResponse struct {
	Invoice struct {
		InvoiceID string `json:"invoice_id"`
	} `json:"invoice"`
}
