// Code generated by easyjson for marshaling/unmarshaling. DO NOT EDIT.

package clients

import (
	json "encoding/json"
	easyjson "github.com/mailru/easyjson"
	jlexer "github.com/mailru/easyjson/jlexer"
	jwriter "github.com/mailru/easyjson/jwriter"
)

// suppress unused package warning
var (
	_ *json.RawMessage
	_ *jlexer.Lexer
	_ *jwriter.Writer
	_ easyjson.Marshaler
)

func easyjsonF04fd6b4DecodeGithubComAquagoAquagoInternalAppServiceClients(in *jlexer.Lexer, out *PaymentStatusDto) {
	isTopLevel := in.IsStart()
	if in.IsNull() {
		if isTopLevel {
			in.Consumed()
		}
		in.Skip()
		return
	}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		switch key {
		case "status":
			if in.IsNull() {
				in.Skip()
			} else {
				out.Status = string(in.String())
			}
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	if isTopLevel {
		in.Consumed()
	}
}
func easyjsonF04fd6b4EncodeGithubComAquagoAquagoInternalAppServiceClients(out *jwriter.Writer, in PaymentStatusDto) {
	out.RawByte('{')
	first := true
	_ = first
	{
		const prefix string = ",\"status\":"
		out.RawString(prefix[1:])
		out.String(string(in.Status))
	}
	out.RawByte('}')
}

// MarshalJSON supports json.Marshaler interface
func (v PaymentStatusDto) MarshalJSON() ([]byte, error) {
	w := jwriter.Writer{}
	easyjsonF04fd6b4EncodeGithubComAquagoAquagoInternalAppServiceClients(&w, v)
	return w.Buffer.BuildBytes(), w.Error
}

// MarshalEasyJSON supports easyjson.Marshaler interface
func (v PaymentStatusDto) MarshalEasyJSON(w *jwriter.Writer) {
	easyjsonF04fd6b4EncodeGithubComAquagoAquagoInternalAppServiceClients(w, v)
}

// UnmarshalJSON supports json.Unmarshaler interface
func (v *PaymentStatusDto) UnmarshalJSON(data []byte) error {
	r := jlexer.Lexer{Data: data}
	easyjsonF04fd6b4DecodeGithubComAquagoAquagoInternalAppServiceClients(&r, v)
	return r.Error()
}

// UnmarshalEasyJSON supports easyjson.Unmarshaler interface
func (v *PaymentStatusDto) UnmarshalEasyJSON(l *jlexer.Lexer) {
	easyjsonF04fd6b4DecodeGithubComAquagoAquagoInternalAppServiceClients(l, v)
}
func easyjsonF04fd6b4DecodeGithubComAquagoAquagoInternalAppServiceClients1(in *jlexer.Lexer, out *PaymentLinkDto) {
	isTopLevel := in.IsStart()
	if in.IsNull() {
		if isTopLevel {
			in.Consumed()
		}
		in.Skip()
		return
	}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		switch key {
		case "link_url":
			if in.IsNull() {
				in.Skip()
			} else {
				out.LinkURL = string(in.String())
			}
		case "link_id":
			if in.IsNull() {
				in.Skip()
			} else {
				out.LinkID = string(in.String())
			}
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	if isTopLevel {
		in.Consumed()
	}
}
func easyjsonF04fd6b4EncodeGithubComAquagoAquagoInternalAppServiceClients1(out *jwriter.Writer, in PaymentLinkDto) {
	out.RawByte('{')
	first := true
	_ = first
	{
		const prefix string = ",\"link_url\":"
		out.RawString(prefix[1:])
		out.String(string(in.LinkURL))
	}
	{
		const prefix string = ",\"link_id\":"
		out.RawString(prefix)
		out.String(string(in.LinkID))
	}
	out.RawByte('}')
}

// MarshalJSON supports json.Marshaler interface
func (v PaymentLinkDto) MarshalJSON() ([]byte, error) {
	w := jwriter.Writer{}
	easyjsonF04fd6b4EncodeGithubComAquagoAquagoInternalAppServiceClients1(&w, v)
	return w.Buffer.BuildBytes(), w.Error
}

// MarshalEasyJSON supports easyjson.Marshaler interface
func (v PaymentLinkDto) MarshalEasyJSON(w *jwriter.Writer) {
	easyjsonF04fd6b4EncodeGithubComAquagoAquagoInternalAppServiceClients1(w, v)
}

// UnmarshalJSON supports json.Unmarshaler interface
func (v *PaymentLinkDto) UnmarshalJSON(data []byte) error {
	r := jlexer.Lexer{Data: data}
	easyjsonF04fd6b4DecodeGithubComAquagoAquagoInternalAppServiceClients1(&r, v)
	return r.Error()
}

// UnmarshalEasyJSON supports easyjson.Unmarshaler interface
func (v *PaymentLinkDto) UnmarshalEasyJSON(l *jlexer.Lexer) {
	easyjsonF04fd6b4DecodeGithubComAquagoAquagoInternalAppServiceClients1(l, v)
}
