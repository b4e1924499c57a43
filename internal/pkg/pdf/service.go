// internal/pkg/pdf/service.go
package pdf

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/SebastiaanKlippert/go-wkhtmltopdf"
	"github.com/your-org/distribuidora-backend/internal/config"
	"github.com/your-org/distribuidora-backend/internal/domain/order"
)

// Service handles PDF generation
type Service struct {
	config *config.Config
}

// NewService creates a new PDF service
func NewService(cfg *config.Config) *Service {
	return &Service{
		config: cfg,
	}
}

// GenerateReceipt generates the PDF receipt (comprobante) for an order.
// The order must be loaded with its items and client.
func (s *Service) GenerateReceipt(o *order.Order) (*bytes.Buffer, error) {
	clientName := ""
	clientEmail := ""
	clientAddress := ""
	clientPhone := ""
	if o.Client != nil {
		clientName = o.Client.GetFullName()
		clientEmail = o.Client.Email
		clientAddress = o.Client.Address
		clientPhone = o.Client.Phone
	}

	data := ReceiptData{
		ReceiptNumber: fmt.Sprintf("COMP-%s", o.OrderNumber),
		IssuedDate:    o.CreatedAt.Format("02/01/2006"),
		Order:         o,
		ClientName:    clientName,
		ClientEmail:   clientEmail,
		ClientAddress: clientAddress,
		ClientPhone:   clientPhone,
		HasDiscount:   o.DiscountTotal.Sign() > 0,
		Company: CompanyInfo{
			Name:    s.config.Company.Name,
			Address: s.config.Company.Address,
			Phone:   s.config.Company.Phone,
			Email:   s.config.Company.Email,
		},
	}

	htmlContent, err := s.generateHTML(data)
	if err != nil {
		return nil, fmt.Errorf("failed to generate HTML: %w", err)
	}

	pdfg, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return nil, fmt.Errorf("failed to create PDF generator: %w", err)
	}

	pdfg.Dpi.Set(300)
	pdfg.Orientation.Set(wkhtmltopdf.OrientationPortrait)
	pdfg.Grayscale.Set(false)

	page := wkhtmltopdf.NewPageReader(bytes.NewReader([]byte(htmlContent)))
	page.FooterRight.Set("[page]")
	page.FooterFontSize.Set(9)
	page.Zoom.Set(0.95)

	pdfg.AddPage(page)

	if err := pdfg.Create(); err != nil {
		return nil, fmt.Errorf("failed to create PDF: %w", err)
	}

	return bytes.NewBuffer(pdfg.Bytes()), nil
}

// generateHTML generates HTML content from template
func (s *Service) generateHTML(data ReceiptData) (string, error) {
	tmpl := template.Must(template.New("receipt").Parse(receiptTemplate))

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

// ReceiptData represents the data passed to the receipt template
type ReceiptData struct {
	ReceiptNumber string       `json:"receipt_number"`
	IssuedDate    string       `json:"issued_date"`
	Order         *order.Order `json:"order"`
	ClientName    string       `json:"client_name"`
	ClientEmail   string       `json:"client_email"`
	ClientAddress string       `json:"client_address"`
	ClientPhone   string       `json:"client_phone"`
	HasDiscount   bool         `json:"has_discount"`
	Company       CompanyInfo  `json:"company"`
}

// CompanyInfo represents company information
type CompanyInfo struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

// Receipt HTML template
const receiptTemplate = `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Comprobante {{.ReceiptNumber}}</title>
    <style>
        body {
            font-family: Arial, sans-serif;
            margin: 0;
            padding: 20px;
            color: #333;
        }
        .header {
            display: flex;
            justify-content: space-between;
            margin-bottom: 30px;
            border-bottom: 2px solid #eee;
            padding-bottom: 20px;
        }
        .company-info {
            flex: 1;
        }
        .receipt-info {
            text-align: right;
            flex: 1;
        }
        .receipt-title {
            font-size: 28px;
            font-weight: bold;
            color: #2563eb;
            margin-bottom: 10px;
        }
        .client-info {
            margin-bottom: 30px;
        }
        .section-title {
            font-size: 16px;
            font-weight: bold;
            margin-bottom: 10px;
            color: #374151;
        }
        .items-table {
            width: 100%;
            border-collapse: collapse;
            margin-bottom: 30px;
        }
        .items-table th,
        .items-table td {
            border: 1px solid #ddd;
            padding: 12px 8px;
            text-align: left;
        }
        .items-table th {
            background-color: #f8f9fa;
            font-weight: bold;
        }
        .items-table .qty-col,
        .items-table .price-col,
        .items-table .total-col {
            text-align: right;
            width: 80px;
        }
        .totals {
            float: right;
            width: 300px;
        }
        .totals table {
            width: 100%;
            border-collapse: collapse;
        }
        .totals td {
            padding: 8px;
            border-bottom: 1px solid #eee;
        }
        .totals .label {
            text-align: right;
            font-weight: bold;
        }
        .totals .amount {
            text-align: right;
            width: 100px;
        }
        .total-row {
            font-size: 18px;
            font-weight: bold;
            border-top: 2px solid #333 !important;
        }
        .footer {
            margin-top: 50px;
            padding-top: 20px;
            border-top: 1px solid #eee;
            text-align: center;
            color: #666;
            font-size: 12px;
        }
        .status-badge {
            display: inline-block;
            padding: 4px 8px;
            border-radius: 4px;
            font-size: 12px;
            font-weight: bold;
            text-transform: uppercase;
            background-color: #dbeafe;
            color: #1e40af;
        }
    </style>
</head>
<body>
    <div class="header">
        <div class="company-info">
            <h1>{{.Company.Name}}</h1>
            <p>{{.Company.Address}}</p>
            <p>Tel: {{.Company.Phone}}</p>
            <p>Email: {{.Company.Email}}</p>
        </div>
        <div class="receipt-info">
            <div class="receipt-title">COMPROBANTE</div>
            <p><strong>Nro:</strong> {{.ReceiptNumber}}</p>
            <p><strong>Fecha:</strong> {{.IssuedDate}}</p>
            <p><strong>Pedido:</strong> {{.Order.OrderNumber}}</p>
            <p><span class="status-badge">{{.Order.Status}}</span></p>
        </div>
    </div>

    <div class="client-info">
        <div class="section-title">Cliente:</div>
        <p><strong>{{.ClientName}}</strong></p>
        {{if .ClientAddress}}<p>{{.ClientAddress}}</p>{{end}}
        {{if .ClientPhone}}<p>Tel: {{.ClientPhone}}</p>{{end}}
        <p>Email: {{.ClientEmail}}</p>
        {{if .Order.PriceListName}}<p>Lista de precios: {{.Order.PriceListName}}</p>{{end}}
    </div>

    <table class="items-table">
        <thead>
            <tr>
                <th>Producto</th>
                <th>Codigo</th>
                <th class="qty-col">Cant.</th>
                <th class="price-col">Precio</th>
                <th class="price-col">Desc.</th>
                <th class="total-col">Total</th>
            </tr>
        </thead>
        <tbody>
            {{range .Order.Items}}
            <tr>
                <td><strong>{{.ProductName}}</strong></td>
                <td>{{.ProductCode}}</td>
                <td class="qty-col">{{.Quantity}}</td>
                <td class="price-col">${{.UnitPrice.StringFixed 2}}</td>
                <td class="price-col">{{if .Discount.IsPositive}}-${{.Discount.StringFixed 2}}{{else}}-{{end}}</td>
                <td class="total-col">${{.TotalPrice.StringFixed 2}}</td>
            </tr>
            {{end}}
        </tbody>
    </table>

    <div class="totals">
        <table>
            <tr>
                <td class="label">Subtotal:</td>
                <td class="amount">${{.Order.Subtotal.StringFixed 2}}</td>
            </tr>
            {{if .HasDiscount}}
            <tr>
                <td class="label">Descuento:</td>
                <td class="amount">-${{.Order.DiscountTotal.StringFixed 2}}</td>
            </tr>
            {{end}}
            <tr class="total-row">
                <td class="label">Total:</td>
                <td class="amount">${{.Order.Total.StringFixed 2}}</td>
            </tr>
        </table>
    </div>

    <div style="clear: both;"></div>

    <div class="footer">
        <p>Gracias por su compra.</p>
        <p>Por consultas sobre este comprobante escriba a {{.Company.Email}} o llame al {{.Company.Phone}}</p>
    </div>
</body>
</html>
`
