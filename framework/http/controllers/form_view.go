package controllers

import "github.com/km-arc/go-forms/framework/forms"

type formView struct {
	AppName string
	Title   string
	Action  string
	Button  string
	Notice  string
	Fields  []fieldView
}

type fieldView struct {
	Name    string
	Label   string
	Kind    string
	Value   string
	Error   string
	Checked bool
	Options []optionView
}

type optionView struct {
	Value    string
	Label    string
	Selected bool
}

func newFormView(appName string, s *forms.Session) formView {
	def := s.Definition()
	v := formView{
		AppName: appName,
		Title:   def.Title,
		Action:  "/forms/" + def.Name,
		Button:  def.Button,
		Notice:  s.Notice(),
	}
	for _, in := range def.Inputs {
		value := s.Value(in.Name)
		fv := fieldView{
			Name:    in.Name,
			Label:   in.Label,
			Kind:    string(in.Kind),
			Value:   value,
			Error:   s.Error(in.Name),
			Checked: in.Kind == forms.Checkbox && value != "",
		}
		for _, o := range in.Options {
			fv.Options = append(fv.Options, optionView{
				Value:    o.Value,
				Label:    o.Label,
				Selected: o.Value == value,
			})
		}
		v.Fields = append(v.Fields, fv)
	}
	return v
}
