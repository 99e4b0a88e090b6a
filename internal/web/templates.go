package web

import "html/template"

// Page templates. Element ids match the ones the forms have always used.
const pageTemplates = `
{{define "composite"}}<!DOCTYPE html>
<html lang="uk">
<head><meta charset="utf-8"><title>Roof calculator</title></head>
<body>
<form method="post" action="/composite/calculate">
  <select id="roof-type" name="roof-type">
    {{range .RoofTypes}}<option value="{{.}}"{{if eq . $.Form.RoofType}} selected{{end}}>{{.}}</option>
    {{end}}
  </select>
  <select id="material-type" name="material-type">
    {{range .MaterialTypes}}<option value="{{.}}"{{if eq . $.Form.MaterialType}} selected{{end}}>{{.}}</option>
    {{end}}
  </select>
  <input id="width" name="width" value="{{.Form.Width}}">
  <input id="length" name="length" value="{{.Form.Length}}">
  <button id="calculate-btn" type="submit">Calculate</button>
</form>
<div id="result">{{.Result}}</div>
</body>
</html>
{{end}}

{{define "decorator"}}<!DOCTYPE html>
<html lang="uk">
<head><meta charset="utf-8"><title>Drug card</title></head>
<body>
<form method="post" action="/decorator/apply">
  <input id="name" name="name" value="{{.Form.Name}}">
  <input id="expiration" name="expiration" value="{{.Form.Expiration}}">
  <input id="dosage" name="dosage" value="{{.Form.Dosage}}">
  <input id="manufacturer" name="manufacturer" value="{{.Form.Manufacturer}}">
  <button id="applyButton" type="submit">Apply</button>
</form>
<div id="drugDescription">{{.Result}}</div>
</body>
</html>
{{end}}
`

func parseTemplates() *template.Template {
	return template.Must(template.New("pages").Parse(pageTemplates))
}
