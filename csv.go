package comercial

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// This file implements the spreadsheet exchange format: a semicolon
// delimited CSV (the convention of pt-BR Excel) with RFC4180-style quoting.

// ExportFilename is the conventional name of an exported sales file.
const ExportFilename = "Dados_Vendas.csv"

// ErrEmptyFile reports a file with no data rows: nothing to import, which
// is distinct from a validation failure.
var ErrEmptyFile = errors.New("file contains no data rows")

// exportHeaders is the fixed column set and order of an exported file.
var exportHeaders = []string{
	"Data", "Vendedor", "Empresa", "Projeto", "O.S.",
	"Área", "Cliente/Serviço", "Valor da Venda", "Status", "Pagamento",
}

// importHeaders is the required column subset of an imported file. The
// seller column is not read back: ownership is assigned by the importing
// session.
var importHeaders = []string{
	"Data", "Empresa", "Projeto", "O.S.",
	"Área", "Cliente/Serviço", "Valor da Venda", "Status", "Pagamento",
}

// escapeField quotes a field when it contains a quote, comma, semicolon or
// line break, doubling inner quotes. Commas force quoting even though the
// delimiter is the semicolon, so the file survives a re-import with either
// convention.
func escapeField(v string) string {
	if strings.ContainsAny(v, "\",;\n\r") {
		return `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
	}
	return v
}

// EncodeSales writes the sales as a delimited file: one header line then
// one line per sale, fields joined by ';', rows joined by '\n'.
func EncodeSales(w io.Writer, sales []*Sale) error {
	lines := make([]string, 0, len(sales)+1)
	lines = append(lines, strings.Join(exportHeaders, ";"))
	for _, s := range sales {
		fields := []string{
			s.Date.String(),
			string(s.Seller),
			string(s.Company),
			s.Project,
			s.OrderSheet,
			string(s.Area),
			s.ClientService,
			s.Value.Amount().String(),
			string(s.Status),
			s.Payment.Amount().String(),
		}
		for i, f := range fields {
			fields[i] = escapeField(f)
		}
		lines = append(lines, strings.Join(fields, ";"))
	}
	if _, err := io.WriteString(w, strings.Join(lines, "\n")); err != nil {
		return fmt.Errorf("cannot write sales file: %w", err)
	}
	return nil
}

// DecodeRows tokenizes a delimited file into one field-name→value map per
// data row, using the first surviving row as the header.
//
// The tokenizer is a character-level state machine: inside quotes a doubled
// quote is a literal quote and a lone quote ends quoting; outside quotes
// ';' ends a field, '\n' ends a row and '\r' is ignored. Fields are trimmed
// of surrounding whitespace and rows that are entirely blank are discarded.
// Malformed quoting never fails: an unmatched quote simply extends the
// field to the end of input.
func DecodeRows(text string) []map[string]string {
	text = strings.TrimPrefix(text, "\ufeff")

	var rows [][]string
	var row []string
	var field strings.Builder
	inQuotes := false

	endField := func() {
		row = append(row, strings.TrimSpace(field.String()))
		field.Reset()
	}

	for i := 0; i < len(text); i++ {
		c := text[i]

		if inQuotes {
			if c == '"' && i+1 < len(text) && text[i+1] == '"' {
				field.WriteByte('"')
				i++
				continue
			}
			if c == '"' {
				inQuotes = false
				continue
			}
			field.WriteByte(c)
			continue
		}

		switch c {
		case '"':
			inQuotes = true
		case ';':
			endField()
		case '\r':
			// ignored
		case '\n':
			endField()
			rows = append(rows, row)
			row = nil
		default:
			field.WriteByte(c)
		}
	}
	endField()
	rows = append(rows, row)

	cleaned := rows[:0]
	for _, r := range rows {
		for _, v := range r {
			if v != "" {
				cleaned = append(cleaned, r)
				break
			}
		}
	}
	if len(cleaned) == 0 {
		return nil
	}

	headers := cleaned[0]
	out := make([]map[string]string, 0, len(cleaned)-1)
	for _, r := range cleaned[1:] {
		m := make(map[string]string, len(headers))
		for i, h := range headers {
			if i < len(r) {
				m[h] = r[i]
			} else {
				m[h] = ""
			}
		}
		out = append(out, m)
	}
	return out
}

var isoDateRE = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ImportSales decodes and validates a delimited sales file, assigning every
// row to the given seller. Validation is all-or-nothing: rows are checked
// in file order and the first failure rejects the whole batch, so either
// every returned sale is valid or none is handed over.
//
// The returned sales carry no IDs or timestamps; the book assigns those.
func ImportSales(text string, seller Seller) ([]*Sale, error) {
	if _, err := ParseSeller(string(seller)); err != nil {
		return nil, err
	}

	rows := DecodeRows(text)
	if len(rows) == 0 {
		return nil, ErrEmptyFile
	}

	var missing []string
	for _, h := range importHeaders {
		if _, ok := rows[0][h]; !ok {
			missing = append(missing, h)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("file does not match the template, missing headers: %s", strings.Join(missing, ", "))
	}

	sales := make([]*Sale, 0, len(rows))
	for i, row := range rows {
		lineNumber := i + 2 // header is line 1
		s, err := importRow(row, seller)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNumber, err)
		}
		sales = append(sales, s)
	}
	return sales, nil
}

// importRow validates a single decoded row, in the documented order: date,
// enumerations, required text fields, monetary values.
func importRow(row map[string]string, seller Seller) (*Sale, error) {
	rawDate := row["Data"]
	if !isoDateRE.MatchString(rawDate) {
		return nil, fmt.Errorf("invalid date format %q, want AAAA-MM-DD", rawDate)
	}
	date, err := parseFileDate(rawDate)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q", rawDate)
	}

	company, err := ParseCompany(row["Empresa"])
	if err != nil {
		return nil, err
	}
	area, err := ParseArea(row["Área"])
	if err != nil {
		return nil, err
	}
	status, err := ParseSaleStatus(row["Status"])
	if err != nil {
		return nil, err
	}

	project := strings.TrimSpace(row["Projeto"])
	if project == "" {
		return nil, fmt.Errorf("field 'Projeto' must not be empty")
	}
	clientService := strings.TrimSpace(row["Cliente/Serviço"])
	if clientService == "" {
		return nil, fmt.Errorf("field 'Cliente/Serviço' must not be empty")
	}

	value, err := ParseMoney(row["Valor da Venda"])
	if err != nil || value.IsNegative() {
		return nil, fmt.Errorf("field 'Valor da Venda' must be a non-negative number")
	}
	payment, err := ParseMoney(row["Pagamento"])
	if err != nil || payment.IsNegative() {
		return nil, fmt.Errorf("field 'Pagamento' must be a non-negative number")
	}

	return &Sale{
		Seller:        seller,
		Date:          date,
		Company:       company,
		Project:       project,
		OrderSheet:    row["O.S."],
		Area:          area,
		ClientService: clientService,
		Value:         value.Round2(),
		Status:        status,
		Payment:       payment.Round2(),
	}, nil
}
