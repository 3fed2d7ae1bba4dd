package tm30

import (
	"fmt"
	"html/template"
	"io"
)

// Person is one row of the printable form. The arrival-card number column is
// always left blank; it is not collected anywhere in the system.
type Person struct {
	NameAndSurname string
	Nationality    string
	PassportNumber string
	TypeOfVisa     string
	DateOfArrival  string
	ExpiryDate     string
	PointOfEntry   string
	PeriodOfStay   string
	Relationship   string
}

// FormOptions adjust the rendered form.
type FormOptions struct {
	// PropertyName is printed above the table. Optional.
	PropertyName string
	// Signatory is printed under the signature line. Optional.
	Signatory string
	// PadRows pads the table with blank rows up to MinRows, matching the
	// paper form. Later revisions of the paper workflow dropped the padding,
	// so it is a switch rather than fixed behavior.
	PadRows bool
	// MinRows is the row count to pad to. Defaults to 10.
	MinRows int
}

type formData struct {
	Options FormOptions
	People  []Person
	Blank   []int
}

// Render writes the filled form as a standalone printable HTML document.
func Render(w io.Writer, people []Person, opts FormOptions) error {
	data := formData{Options: opts, People: people}
	if opts.PadRows {
		min := opts.MinRows
		if min <= 0 {
			min = 10
		}
		for i := len(people); i < min; i++ {
			data.Blank = append(data.Blank, i+1)
		}
	}
	if err := formTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("execute form template: %w", err)
	}
	return nil
}

var formTemplate = template.Must(template.New("tm30").Funcs(template.FuncMap{
	"inc": func(i int) int { return i + 1 },
}).Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>TM30</title>
<style>
body { font-family: "TH Sarabun New", "Garuda", sans-serif; margin: 24px; }
.tm30-header { text-align: center; margin-bottom: 16px; }
.tm30-header h1 { font-size: 20px; margin: 0; }
.tm30-header h2 { font-size: 16px; margin: 2px 0; }
.tm30-header h3 { font-size: 12px; margin: 0; font-weight: normal; }
.tm30-property { text-align: center; font-size: 14px; margin-bottom: 8px; }
table { width: 100%; border-collapse: collapse; font-size: 12px; }
th, td { border: 1px solid #000; padding: 4px; text-align: center; vertical-align: top; }
td { height: 22px; }
.signature { margin-top: 32px; text-align: right; font-size: 14px; }
.signature div { margin-top: 8px; }
@media print { body { margin: 0; } }
</style>
</head>
<body>
<div class="tm30-header">
<h1>บัญชีรายชื่อคนต่างด้าวที่พักอาศัย</h1>
<h2>NAME OF ALIENS IN RESIDENCE</h2>
<h3>(IN BLOCK LETTERS)</h3>
</div>
{{if .Options.PropertyName}}<div class="tm30-property">{{.Options.PropertyName}}</div>{{end}}
<table>
<thead>
<tr>
<th>ลำดับ<br>NO.</th>
<th>ชื่อคนต่างด้าว<br>Name and Surname</th>
<th>สัญชาติ<br>Nationality</th>
<th>หนังสือเดินทางเลขที่<br>Passport Number</th>
<th>ประเภทวีซ่า<br>Type of Visa</th>
<th>วันเดินทางเข้า<br>Date of Arrival</th>
<th>ครบกำหนดอนุญาต<br>Expiry Date of Stay</th>
<th>ช่องทางเข้า<br>Point of Entry</th>
<th>บัตรขาเข้าเลขที่<br>Arrival Card T.M.No.</th>
<th>พักอาศัยระหว่าง วันที่<br>Period of stay From....to....</th>
<th>ความเกี่ยวพัน<br>Relationship</th>
</tr>
</thead>
<tbody>
{{range $i, $p := .People}}<tr>
<td>{{inc $i}}</td>
<td>{{$p.NameAndSurname}}</td>
<td>{{$p.Nationality}}</td>
<td>{{$p.PassportNumber}}</td>
<td>{{$p.TypeOfVisa}}</td>
<td>{{$p.DateOfArrival}}</td>
<td>{{$p.ExpiryDate}}</td>
<td>{{$p.PointOfEntry}}</td>
<td></td>
<td>{{$p.PeriodOfStay}}</td>
<td>{{$p.Relationship}}</td>
</tr>
{{end}}{{range .Blank}}<tr class="empty-row">
<td>{{.}}</td>
<td></td><td></td><td></td><td></td><td></td><td></td><td></td><td></td><td></td><td></td>
</tr>
{{end}}</tbody>
</table>
<div class="signature">
ลายมือชื่อ................................................ผู้รับรองรายการ
<div>({{if .Options.Signatory}}{{.Options.Signatory}}{{else}}................................................{{end}})</div>
</div>
</body>
</html>
`))
