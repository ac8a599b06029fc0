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

func easyjson56de76c1DecodeGithubComAquagoAquagoInternalAppServiceClients(in *jlexer.Lexer, out *WalletBalanceDto) {
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
		case "balance":
			if in.IsNull() {
				in.Skip()
			} else {
				out.Balance = float64(in.Float64())
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
func easyjson56de76c1EncodeGithubComAquagoAquagoInternalAppServiceClients(out *jwriter.Writer, in WalletBalanceDto) {
	out.RawByte('{')
	first := true
	_ = first
	{
		const prefix string = ",\"balance\":"
		out.RawString(prefix[1:])
		out.Float64(float64(in.Balance))
	}
	out.RawByte('}')
}

// MarshalJSON supports json.Marshaler interface
func (v WalletBalanceDto) MarshalJSON() ([]byte, error) {
	w := jwriter.Writer{}
	easyjson56de76c1EncodeGithubComAquagoAquagoInternalAppServiceClients(&w, v)
	return w.Buffer.BuildBytes(), w.Error
}

// MarshalEasyJSON supports easyjson.Marshaler interface
func (v WalletBalanceDto) MarshalEasyJSON(w *jwriter.Writer) {
	easyjson56de76c1EncodeGithubComAquagoAquagoInternalAppServiceClients(w, v)
}

// UnmarshalJSON supports json.Unmarshaler interface
func (v *WalletBalanceDto) UnmarshalJSON(data []byte) error {
	r := jlexer.Lexer{Data: data}
	easyjson56de76c1DecodeGithubComAquagoAquagoInternalAppServiceClients(&r, v)
	return r.Error()
}

// UnmarshalEasyJSON supports easyjson.Unmarshaler interface
func (v *WalletBalanceDto) UnmarshalEasyJSON(l *jlexer.Lexer) {
	easyjson56de76c1DecodeGithubComAquagoAquagoInternalAppServiceClients(l, v)
}
func easyjson56de76c1DecodeGithubComAquagoAquagoInternalAppServiceClients1(in *jlexer.Lexer, out *TopUpRequestDto) {
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
		case "p_user_id":
			if in.IsNull() {
				in.Skip()
			} else {
				out.UserID = string(in.String())
			}
		case "p_amount":
			if in.IsNull() {
				in.Skip()
			} else {
				out.Amount = float64(in.Float64())
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
func easyjson56de76c1EncodeGithubComAquagoAquagoInternalAppServiceClients1(out *jwriter.Writer, in TopUpRequestDto) {
	out.RawByte('{')
	first := true
	_ = first
	{
		const prefix string = ",\"p_user_id\":"
		out.RawString(prefix[1:])
		out.String(string(in.UserID))
	}
	{
		const prefix string = ",\"p_amount\":"
		out.RawString(prefix)
		out.Float64(float64(in.Amount))
	}
	out.RawByte('}')
}

// MarshalJSON supports json.Marshaler interface
func (v TopUpRequestDto) MarshalJSON() ([]byte, error) {
	w := jwriter.Writer{}
	easyjson56de76c1EncodeGithubComAquagoAquagoInternalAppServiceClients1(&w, v)
	return w.Buffer.BuildBytes(), w.Error
}

// MarshalEasyJSON supports easyjson.Marshaler interface
func (v TopUpRequestDto) MarshalEasyJSON(w *jwriter.Writer) {
	easyjson56de76c1EncodeGithubComAquagoAquagoInternalAppServiceClients1(w, v)
}

// UnmarshalJSON supports json.Unmarshaler interface
func (v *TopUpRequestDto) UnmarshalJSON(data []byte) error {
	r := jlexer.Lexer{Data: data}
	easyjson56de76c1DecodeGithubComAquagoAquagoInternalAppServiceClients1(&r, v)
	return r.Error()
}

// UnmarshalEasyJSON supports easyjson.Unmarshaler interface
func (v *TopUpRequestDto) UnmarshalEasyJSON(l *jlexer.Lexer) {
	easyjson56de76c1DecodeGithubComAquagoAquagoInternalAppServiceClients1(l, v)
}
func easyjson56de76c1DecodeGithubComAquagoAquagoInternalAppServiceClients2(in *jlexer.Lexer, out *SupplierDtoSlice) {
	isTopLevel := in.IsStart()
	if in.IsNull() {
		in.Skip()
		*out = nil
	} else {
		in.Delim('[')
		if *out == nil {
			if !in.IsDelim(']') {
				*out = make(SupplierDtoSlice, 0, 0)
			} else {
				*out = SupplierDtoSlice{}
			}
		} else {
			*out = (*out)[:0]
		}
		for !in.IsDelim(']') {
			var v1 SupplierDto
			if in.IsNull() {
				in.Skip()
			} else {
				(v1).UnmarshalEasyJSON(in)
			}
			*out = append(*out, v1)
			in.WantComma()
		}
		in.Delim(']')
	}
	if isTopLevel {
		in.Consumed()
	}
}
func easyjson56de76c1EncodeGithubComAquagoAquagoInternalAppServiceClients2(out *jwriter.Writer, in SupplierDtoSlice) {
	if in == nil && (out.Flags&jwriter.NilSliceAsEmpty) == 0 {
		out.RawString("null")
	} else {
		out.RawByte('[')
		for v2, v3 := range in {
			if v2 > 0 {
				out.RawByte(',')
			}
			(v3).MarshalEasyJSON(out)
		}
		out.RawByte(']')
	}
}

// MarshalJSON supports json.Marshaler interface
func (v SupplierDtoSlice) MarshalJSON() ([]byte, error) {
	w := jwriter.Writer{}
	easyjson56de76c1EncodeGithubComAquagoAquagoInternalAppServiceClients2(&w, v)
	return w.Buffer.BuildBytes(), w.Error
}

// MarshalEasyJSON supports easyjson.Marshaler interface
func (v SupplierDtoSlice) MarshalEasyJSON(w *jwriter.Writer) {
	easyjson56de76c1EncodeGithubComAquagoAquagoInternalAppServiceClients2(w, v)
}

// UnmarshalJSON supports json.Unmarshaler interface
func (v *SupplierDtoSlice) UnmarshalJSON(data []byte) error {
	r := jlexer.Lexer{Data: data}
	easyjson56de76c1DecodeGithubComAquagoAquagoInternalAppServiceClients2(&r, v)
	return r.Error()
}

// UnmarshalEasyJSON supports easyjson.Unmarshaler interface
func (v *SupplierDtoSlice) UnmarshalEasyJSON(l *jlexer.Lexer) {
	easyjson56de76c1DecodeGithubComAquagoAquagoInternalAppServiceClients2(l, v)
}
func easyjson56de76c1DecodeGithubComAquagoAquagoInternalAppServiceClients3(in *jlexer.Lexer, out *SupplierDto) {
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
		case "id":
			if in.IsNull() {
				in.Skip()
			} else {
				out.ID = string(in.String())
			}
		case "name":
			if in.IsNull() {
				in.Skip()
			} else {
				out.Name = string(in.String())
			}
		case "location":
			if in.IsNull() {
				in.Skip()
			} else {
				out.Location = string(in.String())
			}
		case "address":
			if in.IsNull() {
				in.Skip()
			} else {
				out.Address = string(in.String())
			}
		case "capacity":
			if in.IsNull() {
				in.Skip()
			} else {
				out.Capacity = int(in.Int())
			}
		case "available_volume":
			if in.IsNull() {
				in.Skip()
			} else {
				out.AvailableVolume = int(in.Int())
			}
		case "is_online":
			if in.IsNull() {
				in.Skip()
			} else {
				out.IsOnline = bool(in.Bool())
			}
		case "rates":
			if in.IsNull() {
				in.Skip()
				out.Rates = nil
			} else {
				in.Delim('[')
				if out.Rates == nil {
					if !in.IsDelim(']') {
						out.Rates = make([]RateTierDto, 0, 4)
					} else {
						out.Rates = []RateTierDto{}
					}
				} else {
					out.Rates = (out.Rates)[:0]
				}
				for !in.IsDelim(']') {
					var v4 RateTierDto
					if in.IsNull() {
						in.Skip()
					} else {
						(v4).UnmarshalEasyJSON(in)
					}
					out.Rates = append(out.Rates, v4)
					in.WantComma()
				}
				in.Delim(']')
			}
		case "contact_number":
			if in.IsNull() {
				in.Skip()
			} else {
				out.ContactNumber = string(in.String())
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
func easyjson56de76c1EncodeGithubComAquagoAquagoInternalAppServiceClients3(out *jwriter.Writer, in SupplierDto) {
	out.RawByte('{')
	first := true
	_ = first
	{
		const prefix string = ",\"id\":"
		out.RawString(prefix[1:])
		out.String(string(in.ID))
	}
	{
		const prefix string = ",\"name\":"
		out.RawString(prefix)
		out.String(string(in.Name))
	}
	{
		const prefix string = ",\"location\":"
		out.RawString(prefix)
		out.String(string(in.Location))
	}
	{
		const prefix string = ",\"address\":"
		out.RawString(prefix)
		out.String(string(in.Address))
	}
	{
		const prefix string = ",\"capacity\":"
		out.RawString(prefix)
		out.Int(int(in.Capacity))
	}
	{
		const prefix string = ",\"available_volume\":"
		out.RawString(prefix)
		out.Int(int(in.AvailableVolume))
	}
	{
		const prefix string = ",\"is_online\":"
		out.RawString(prefix)
		out.Bool(bool(in.IsOnline))
	}
	{
		const prefix string = ",\"rates\":"
		out.RawString(prefix)
		if in.Rates == nil && (out.Flags&jwriter.NilSliceAsEmpty) == 0 {
			out.RawString("null")
		} else {
			out.RawByte('[')
			for v5, v6 := range in.Rates {
				if v5 > 0 {
					out.RawByte(',')
				}
				(v6).MarshalEasyJSON(out)
			}
			out.RawByte(']')
		}
	}
	{
		const prefix string = ",\"contact_number\":"
		out.RawString(prefix)
		out.String(string(in.ContactNumber))
	}
	out.RawByte('}')
}

// MarshalJSON supports json.Marshaler interface
func (v SupplierDto) MarshalJSON() ([]byte, error) {
	w := jwriter.Writer{}
	easyjson56de76c1EncodeGithubComAquagoAquagoInternalAppServiceClients3(&w, v)
	return w.Buffer.BuildBytes(), w.Error
}

// MarshalEasyJSON supports easyjson.Marshaler interface
func (v SupplierDto) MarshalEasyJSON(w *jwriter.Writer) {
	easyjson56de76c1EncodeGithubComAquagoAquagoInternalAppServiceClients3(w, v)
}

// UnmarshalJSON supports json.Unmarshaler interface
func (v *SupplierDto) UnmarshalJSON(data []byte) error {
	r := jlexer.Lexer{Data: data}
	easyjson56de76c1DecodeGithubComAquagoAquagoInternalAppServiceClients3(&r, v)
	return r.Error()
}

// UnmarshalEasyJSON supports easyjson.Unmarshaler interface
func (v *SupplierDto) UnmarshalEasyJSON(l *jlexer.Lexer) {
	easyjson56de76c1DecodeGithubComAquagoAquagoInternalAppServiceClients3(l, v)
}
func easyjson56de76c1DecodeGithubComAquagoAquagoInternalAppServiceClients4(in *jlexer.Lexer, out *SupplierContactDto) {
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
		case "contact_number":
			if in.IsNull() {
				in.Skip()
			} else {
				out.ContactNumber = string(in.String())
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
func easyjson56de76c1EncodeGithubComAquagoAquagoInternalAppServiceClients4(out *jwriter.Writer, in SupplierContactDto) {
	out.RawByte('{')
	first := true
	_ = first
	{
		const prefix string = ",\"contact_number\":"
		out.RawString(prefix[1:])
		out.String(string(in.ContactNumber))
	}
	out.RawByte('}')
}

// MarshalJSON supports json.Marshaler interface
func (v SupplierContactDto) MarshalJSON() ([]byte, error) {
	w := jwriter.Writer{}
	easyjson56de76c1EncodeGithubComAquagoAquagoInternalAppServiceClients4(&w, v)
	return w.Buffer.BuildBytes(), w.Error
}

// MarshalEasyJSON supports easyjson.Marshaler interface
func (v SupplierContactDto) MarshalEasyJSON(w *jwriter.Writer) {
	easyjson56de76c1EncodeGithubComAquagoAquagoInternalAppServiceClients4(w, v)
}

// UnmarshalJSON supports json.Unmarshaler interface
func (v *SupplierContactDto) UnmarshalJSON(data []byte) error {
	r := jlexer.Lexer{Data: data}
	easyjson56de76c1DecodeGithubComAquagoAquagoInternalAppServiceClients4(&r, v)
	return r.Error()
}

// UnmarshalEasyJSON supports easyjson.Unmarshaler interface
func (v *SupplierContactDto) UnmarshalEasyJSON(l *jlexer.Lexer) {
	easyjson56de76c1DecodeGithubComAquagoAquagoInternalAppServiceClients4(l, v)
}
func easyjson56de76c1DecodeGithubComAquagoAquagoInternalAppServiceClients5(in *jlexer.Lexer, out *SendChatMessageRequestDto) {
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
		case "p_delivery_id":
			if in.IsNull() {
				in.Skip()
			} else {
				out.DeliveryID = string(in.String())
			}
		case "p_message":
			if in.IsNull() {
				in.Skip()
			} else {
				out.Message = string(in.String())
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
func easyjson56de76c1EncodeGithubComAquagoAquagoInternalAppServiceClients5(out *jwriter.Writer, in SendChatMessageRequestDto) {
	out.RawByte('{')
	first := true
	_ = first
	{
		const prefix string = ",\"p_delivery_id\":"
		out.RawString(prefix[1:])
		out.String(string(in.DeliveryID))
	}
	{
		const prefix string = ",\"p_message\":"
		out.RawString(prefix)
		out.String(string(in.Message))
	}
	out.RawByte('}')
}

// MarshalJSON supports json.Marshaler interface
func (v SendChatMessageRequestDto) MarshalJSON() ([]byte, error) {
	w := jwriter.Writer{}
	easyjson56de76c1EncodeGithubComAquagoAquagoInternalAppServiceClients5(&w, v)
	return w.Buffer.BuildBytes(), w.Error
}

// MarshalEasyJSON supports easyjson.Marshaler interface
func (v SendChatMessageRequestDto) MarshalEasyJSON(w *jwriter.Writer) {
	easyjson56de76c1EncodeGithubComAquagoAquagoInternalAppServiceClients5(w, v)
}

// UnmarshalJSON supports json.Unmarshaler interface
func (v *SendChatMessageRequestDto) UnmarshalJSON(data []byte) error {
	r := jlexer.Lexer{Data: data}
	easyjson56de76c1DecodeGithubComAquagoAquagoInternalAppServiceClients5(&r, v)
	return r.Error()
}

// UnmarshalEasyJSON supports easyjson.Unmarshaler interface
func (v *SendChatMessageRequestDto) UnmarshalEasyJSON(l *jlexer.Lexer) {
	easyjson56de76c1DecodeGithubComAquagoAquagoInternalAppServiceClients5(l, v)
}
func easyjson56de76c1DecodeGithubComAquagoAquagoInternalAppServiceClients6(in *jlexer.Lexer, out *RegisterRequestDto) {
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
		case "name":
			if in.IsNull() {
				in.Skip()
			} else {
				out.Name = string(in.String())
			}
		case "email":
			if in.IsNull() {
				in.Skip()
			} else {
				out.Email = string(in.String())
			}
		case "phone":
			if in.IsNull() {
				in.Skip()
			} else {
				out.Phone = string(in.String())
			}
		case "password":
			if in.IsNull() {
				in.Skip()
			} else {
				out.Password = string(in.String())
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
func easyjson56de76c1EncodeGithubComAquagoAquagoInternalAppServiceClients6(out *jwriter.Writer, in RegisterRequestDto) {
	out.RawByte('{')
	first := true
	_ = first
	{
		const prefix string = ",\"name\":"
		out.RawString(prefix[1:])
		out.String(string(in.Name))
	}
	{
		const prefix string = ",\"email\":"
		out.RawString(prefix)
		out.String(string(in.Email))
	}
	{
		const prefix string = ",\"phone\":"
		out.RawString(prefix)
		out.String(string(in.Phone))
	}
	{
		const prefix string = ",\"password\":"
		out.RawString(prefix)
		out.String(string(in.Password))
	}
	out.RawByte('}')
}

// MarshalJSON supports json.Marshaler interface
func (v RegisterRequestDto) MarshalJSON() ([]byte, error) {
	w := jwriter.Writer{}
	easyjson56de76c1EncodeGithubComAquagoAquagoInternalAppServiceClients6(&w, v)
	return w.Buffer.BuildBytes(), w.Error
}

// MarshalEasyJSON supports easyjson.Marshaler interface
func (v RegisterRequestDto) MarshalEasyJSON(w *jwriter.Writer) {
	easyjson56de76c1EncodeGithubComAquagoAquagoInternalAppServiceClients6(w, v)
}

// UnmarshalJSON supports json.Unmarshaler interface
func (v *RegisterRequestDto) UnmarshalJSON(data []byte) error {
	r := jlexer.Lexer{Data: data}
	easyjson56de76c1DecodeGithubComAquagoAquagoInternalAppServiceClients6(&r, v)
	return r.Error()
}

// UnmarshalEasyJSON supports easyjson.Unmarshaler interface
func (v *RegisterRequestDto) UnmarshalEasyJSON(l *jlexer.Lexer) {
	easyjson56de76c1DecodeGithubComAquagoAquagoInternalAppServiceClients6(l, v)
}
func easyjson56de76c1DecodeGithubComAquagoAquagoInternalAppServiceClients7(in *jlexer.Lexer, out *RateTierDto) {
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
		case "volume":
			if in.IsNull() {
				in.Skip()
			} else {
				out.Volume = int(in.Int())
			}
		case "price":
			if in.IsNull() {
				in.Skip()
			} else {
				out.Price = float64(in.Float64())
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
func easyjson56de76c1EncodeGithubComAquagoAquagoInternalAppServiceClients7(out *jwriter.Writer, in RateTierDto) {
	out.RawByte('{')
	first := true
	_ = first
	{
		const prefix string = ",\"volume\":"
		out.RawString(prefix[1:])
		out.Int(int(in.Volume))
	}
	{
		const prefix string = ",\"price\":"
		out.RawString(prefix)
		out.Float64(float64(in.Price))
	}
	out.RawByte('}')
}

// MarshalJSON supports json.Marshaler interface
func (v RateTierDto) MarshalJSON() ([]byte, error) {
	w := jwriter.Writer{}
	easyjson56de76c1EncodeGithubComAquagoAquagoInternalAppServiceClients7(&w, v)
	return w.Buffer.BuildBytes(), w.Error
}

// MarshalEasyJSON supports easyjson.Marshaler interface
func (v RateTierDto) MarshalEasyJSON(w *jwriter.Writer) {
	easyjson56de76c1EncodeGithubComAquagoAquagoInternalAppServiceClients7(w, v)
}

// UnmarshalJSON supports json.Unmarshaler interface
func (v *RateTierDto) UnmarshalJSON(data []byte) error {
	r := jlexer.Lexer{Data: data}
	easyjson56de76c1DecodeGithubComAquagoAquagoInternalAppServiceClients7(&r, v)
	return r.Error()
}

// UnmarshalEasyJSON supports easyjson.Unmarshaler interface
func (v *RateTierDto) UnmarshalEasyJSON(l *jlexer.Lexer) {
	easyjson56de76c1DecodeGithubComAquagoAquagoInternalAppServiceClients7(l, v)
}
func easyjson56de76c1DecodeGithubComAquagoAquagoInternalAppServiceClients8(in *jlexer.Lexer, out *ProfileDto) {
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
		case "id":
			if in.IsNull() {
				in.Skip()
			} else {
				out.ID = string(in.String())
			}
		case "name":
			if in.IsNull() {
				in.Skip()
			} else {
				out.Name = string(in.String())
			}
		case "email":
			if in.IsNull() {
				in.Skip()
			} else {
				out.Email = string(in.String())
			}
		case "phone":
			if in.IsNull() {
				in.Skip()
			} else {
				out.Phone = string(in.String())
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
func easyjson56de76c1EncodeGithubComAquagoAquagoInternalAppServiceClients8(out *jwriter.Writer, in ProfileDto) {
	out.RawByte('{')
	first := true
	_ = first
	{
		const prefix string = ",\"id\":"
		out.RawString(prefix[1:])
		out.String(string(in.ID))
	}
	{
		const prefix string = ",\"name\":"
		out.RawString(prefix)
		out.String(string(in.Name))
	}
	{
		const prefix string = ",\"email\":"
		out.RawString(prefix)
		out.String(string(in.Email))
	}
	{
		const prefix string = ",\"phone\":"
		out.RawString(prefix)
		out.String(string(in.Phone))
	}
	out.RawByte('}')
}

// MarshalJSON supports json.Marshaler interface
func (v ProfileDto) MarshalJSON() ([]byte, error) {
	w := jwriter.Writer{}
	easyjson56de76c1EncodeGithubComAquagoAquagoInternalAppServiceClients8(&w, v)
	return w.Buffer.BuildBytes(), w.Error
}

// MarshalEasyJSON supports easyjson.Marshaler interface
func (v ProfileDto) MarshalEasyJSON(w *jwriter.Writer) {
	easyjson56de76c1EncodeGithubComAquagoAquagoInternalAppServiceClients8(w, v)
}

// UnmarshalJSON supports json.Unmarshaler interface
func (v *ProfileDto) UnmarshalJSON(data []byte) error {
	r := jlexer.Lexer{Data: data}
	easyjson56de76c1DecodeGithubComAquagoAquagoInternalAppServiceClients8(&r, v)
	return r.Error()
}

// UnmarshalEasyJSON supports easyjson.Unmarshaler interface
func (v *ProfileDto) UnmarshalEasyJSON(l *jlexer.Lexer) {
	easyjson56de76c1DecodeGithubComAquagoAquagoInternalAppServiceClients8(l, v)
}
func easyjson56de76c1DecodeGithubComAquagoAquagoInternalAppServiceClients9(in *jlexer.Lexer, out *LoginRequestDto) {
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
		case "email":
			if in.IsNull() {
				in.Skip()
			} else {
				out.Email = string(in.String())
			}
		case "password":
			if in.IsNull() {
				in.Skip()
			} else {
				out.Password = string(in.String())
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
func easyjson56de76c1EncodeGithubComAquagoAquagoInternalAppServiceClients9(out *jwriter.Writer, in LoginRequestDto) {
	out.RawByte('{')
	first := true
	_ = first
	{
		const prefix string = ",\"email\":"
		out.RawString(prefix[1:])
		out.String(string(in.Email))
	}
	{
		const prefix string = ",\"password\":"
		out.RawString(prefix)
		out.String(string(in.Password))
	}
	out.RawByte('}')
}

// MarshalJSON supports json.Marshaler interface
func (v LoginRequestDto) MarshalJSON() ([]byte, error) {
	w := jwriter.Writer{}
	easyjson56de76c1EncodeGithubComAquagoAquagoInternalAppServiceClients9(&w, v)
	return w.Buffer.BuildBytes(), w.Error
}

// MarshalEasyJSON supports easyjson.Marshaler interface
func (v LoginRequestDto) MarshalEasyJSON(w *jwriter.Writer) {
	easyjson56de76c1EncodeGithubComAquagoAquagoInternalAppServiceClients9(w, v)
}

// UnmarshalJSON supports json.Unmarshaler interface
func (v *LoginRequestDto) UnmarshalJSON(data []byte) error {
	r := jlexer.Lexer{Data: data}
	easyjson56de76c1DecodeGithubComAquagoAquagoInternalAppServiceClients9(&r, v)
	return r.Error()
}

// UnmarshalEasyJSON supports easyjson.Unmarshaler interface
func (v *LoginRequestDto) UnmarshalEasyJSON(l *jlexer.Lexer) {
	easyjson56de76c1DecodeGithubComAquagoAquagoInternalAppServiceClients9(l, v)
}
func easyjson56de76c1DecodeGithubComAquagoAquagoInternalAppServiceClients10(in *jlexer.Lexer, out *GatewayErrorDto) {
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
		case "message":
			if in.IsNull() {
				in.Skip()
			} else {
				out.Message = string(in.String())
			}
		case "code":
			if in.IsNull() {
				in.Skip()
			} else {
				out.Code = int(in.Int())
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
func easyjson56de76c1EncodeGithubComAquagoAquagoInternalAppServiceClients10(out *jwriter.Writer, in GatewayErrorDto) {
	out.RawByte('{')
	first := true
	_ = first
	{
		const prefix string = ",\"message\":"
		out.RawString(prefix[1:])
		out.String(string(in.Message))
	}
	{
		const prefix string = ",\"code\":"
		out.RawString(prefix)
		out.Int(int(in.Code))
	}
	out.RawByte('}')
}

// MarshalJSON supports json.Marshaler interface
func (v GatewayErrorDto) MarshalJSON() ([]byte, error) {
	w := jwriter.Writer{}
	easyjson56de76c1EncodeGithubComAquagoAquagoInternalAppServiceClients10(&w, v)
	return w.Buffer.BuildBytes(), w.Error
}

// MarshalEasyJSON supports easyjson.Marshaler interface
func (v GatewayErrorDto) MarshalEasyJSON(w *jwriter.Writer) {
	easyjson56de76c1EncodeGithubComAquagoAquagoInternalAppServiceClients10(w, v)
}

// UnmarshalJSON supports json.Unmarshaler interface
func (v *GatewayErrorDto) UnmarshalJSON(data []byte) error {
	r := jlexer.Lexer{Data: data}
	easyjson56de76c1DecodeGithubComAquagoAquagoInternalAppServiceClients10(&r, v)
	return r.Error()
}

// UnmarshalEasyJSON supports easyjson.Unmarshaler interface
func (v *GatewayErrorDto) UnmarshalEasyJSON(l *jlexer.Lexer) {
	easyjson56de76c1DecodeGithubComAquagoAquagoInternalAppServiceClients10(l, v)
}
func easyjson56de76c1DecodeGithubComAquagoAquagoInternalAppServiceClients11(in *jlexer.Lexer, out *DeliveryDtoSlice) {
	isTopLevel := in.IsStart()
	if in.IsNull() {
		in.Skip()
		*out = nil
	} else {
		in.Delim('[')
		if *out == nil {
			if !in.IsDelim(']') {
				*out = make(DeliveryDtoSlice, 0, 0)
			} else {
				*out = DeliveryDtoSlice{}
			}
		} else {
			*out = (*out)[:0]
		}
		for !in.IsDelim(']') {
			var v7 DeliveryDto
			if in.IsNull() {
				in.Skip()
			} else {
				(v7).UnmarshalEasyJSON(in)
			}
			*out = append(*out, v7)
			in.WantComma()
		}
		in.Delim(']')
	}
	if isTopLevel {
		in.Consumed()
	}
}
func easyjson56de76c1EncodeGithubComAquagoAquagoInternalAppServiceClients11(out *jwriter.Writer, in DeliveryDtoSlice) {
	if in == nil && (out.Flags&jwriter.NilSliceAsEmpty) == 0 {
		out.RawString("null")
	} else {
		out.RawByte('[')
		for v8, v9 := range in {
			if v8 > 0 {
				out.RawByte(',')
			}
			(v9).MarshalEasyJSON(out)
		}
		out.RawByte(']')
	}
}

// MarshalJSON supports json.Marshaler interface
func (v DeliveryDtoSlice) MarshalJSON() ([]byte, error) {
	w := jwriter.Writer{}
	easyjson56de76c1EncodeGithubComAquagoAquagoInternalAppServiceClients11(&w, v)
	return w.Buffer.BuildBytes(), w.Error
}

// MarshalEasyJSON supports easyjson.Marshaler interface
func (v DeliveryDtoSlice) MarshalEasyJSON(w *jwriter.Writer) {
	easyjson56de76c1EncodeGithubComAquagoAquagoInternalAppServiceClients11(w, v)
}

// UnmarshalJSON supports json.Unmarshaler interface
func (v *DeliveryDtoSlice) UnmarshalJSON(data []byte) error {
	r := jlexer.Lexer{Data: data}
	easyjson56de76c1DecodeGithubComAquagoAquagoInternalAppServiceClients11(&r, v)
	return r.Error()
}

// UnmarshalEasyJSON supports easyjson.Unmarshaler interface
func (v *DeliveryDtoSlice) UnmarshalEasyJSON(l *jlexer.Lexer) {
	easyjson56de76c1DecodeGithubComAquagoAquagoInternalAppServiceClients11(l, v)
}
func easyjson56de76c1DecodeGithubComAquagoAquagoInternalAppServiceClients12(in *jlexer.Lexer, out *DeliveryDto) {
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
		case "id":
			if in.IsNull() {
				in.Skip()
			} else {
				out.ID = string(in.String())
			}
		case "user_id":
			if in.IsNull() {
				in.Skip()
			} else {
				out.UserID = string(in.String())
			}
		case "container_id":
			if in.IsNull() {
				in.Skip()
			} else {
				out.ContainerID = string(in.String())
			}
		case "volume":
			if in.IsNull() {
				in.Skip()
			} else {
				out.Volume = int(in.Int())
			}
		case "amount":
			if in.IsNull() {
				in.Skip()
			} else {
				out.Amount = float64(in.Float64())
			}
		case "address":
			if in.IsNull() {
				in.Skip()
			} else {
				out.Address = string(in.String())
			}
		case "location":
			if in.IsNull() {
				in.Skip()
			} else {
				out.Location = string(in.String())
			}
		case "payment_method":
			if in.IsNull() {
				in.Skip()
			} else {
				out.PaymentMethod = string(in.String())
			}
		case "payment_details":
			if in.IsNull() {
				in.Skip()
			} else {
				out.PaymentDetails = string(in.String())
			}
		case "status":
			if in.IsNull() {
				in.Skip()
			} else {
				out.Status = string(in.String())
			}
		case "supplier_contact":
			if in.IsNull() {
				in.Skip()
			} else {
				out.SupplierContact = string(in.String())
			}
		case "created_at":
			if in.IsNull() {
				in.Skip()
			} else {
				if data := in.Raw(); in.Ok() {
					in.AddError((out.CreatedAt).UnmarshalJSON(data))
				}
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
func easyjson56de76c1EncodeGithubComAquagoAquagoInternalAppServiceClients12(out *jwriter.Writer, in DeliveryDto) {
	out.RawByte('{')
	first := true
	_ = first
	{
		const prefix string = ",\"id\":"
		out.RawString(prefix[1:])
		out.String(string(in.ID))
	}
	{
		const prefix string = ",\"user_id\":"
		out.RawString(prefix)
		out.String(string(in.UserID))
	}
	{
		const prefix string = ",\"container_id\":"
		out.RawString(prefix)
		out.String(string(in.ContainerID))
	}
	{
		const prefix string = ",\"volume\":"
		out.RawString(prefix)
		out.Int(int(in.Volume))
	}
	{
		const prefix string = ",\"amount\":"
		out.RawString(prefix)
		out.Float64(float64(in.Amount))
	}
	{
		const prefix string = ",\"address\":"
		out.RawString(prefix)
		out.String(string(in.Address))
	}
	{
		const prefix string = ",\"location\":"
		out.RawString(prefix)
		out.String(string(in.Location))
	}
	{
		const prefix string = ",\"payment_method\":"
		out.RawString(prefix)
		out.String(string(in.PaymentMethod))
	}
	{
		const prefix string = ",\"payment_details\":"
		out.RawString(prefix)
		out.String(string(in.PaymentDetails))
	}
	{
		const prefix string = ",\"status\":"
		out.RawString(prefix)
		out.String(string(in.Status))
	}
	{
		const prefix string = ",\"supplier_contact\":"
		out.RawString(prefix)
		out.String(string(in.SupplierContact))
	}
	{
		const prefix string = ",\"created_at\":"
		out.RawString(prefix)
		out.Raw((in.CreatedAt).MarshalJSON())
	}
	out.RawByte('}')
}

// MarshalJSON supports json.Marshaler interface
func (v DeliveryDto) MarshalJSON() ([]byte, error) {
	w := jwriter.Writer{}
	easyjson56de76c1EncodeGithubComAquagoAquagoInternalAppServiceClients12(&w, v)
	return w.Buffer.BuildBytes(), w.Error
}

// MarshalEasyJSON supports easyjson.Marshaler interface
func (v DeliveryDto) MarshalEasyJSON(w *jwriter.Writer) {
	easyjson56de76c1EncodeGithubComAquagoAquagoInternalAppServiceClients12(w, v)
}

// UnmarshalJSON supports json.Unmarshaler interface
func (v *DeliveryDto) UnmarshalJSON(data []byte) error {
	r := jlexer.Lexer{Data: data}
	easyjson56de76c1DecodeGithubComAquagoAquagoInternalAppServiceClients12(&r, v)
	return r.Error()
}

// UnmarshalEasyJSON supports easyjson.Unmarshaler interface
func (v *DeliveryDto) UnmarshalEasyJSON(l *jlexer.Lexer) {
	easyjson56de76c1DecodeGithubComAquagoAquagoInternalAppServiceClients12(l, v)
}
func easyjson56de76c1DecodeGithubComAquagoAquagoInternalAppServiceClients13(in *jlexer.Lexer, out *CreateDeliveryResponseDto) {
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
		case "order_id":
			if in.IsNull() {
				in.Skip()
			} else {
				out.OrderID = string(in.String())
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
func easyjson56de76c1EncodeGithubComAquagoAquagoInternalAppServiceClients13(out *jwriter.Writer, in CreateDeliveryResponseDto) {
	out.RawByte('{')
	first := true
	_ = first
	{
		const prefix string = ",\"order_id\":"
		out.RawString(prefix[1:])
		out.String(string(in.OrderID))
	}
	out.RawByte('}')
}

// MarshalJSON supports json.Marshaler interface
func (v CreateDeliveryResponseDto) MarshalJSON() ([]byte, error) {
	w := jwriter.Writer{}
	easyjson56de76c1EncodeGithubComAquagoAquagoInternalAppServiceClients13(&w, v)
	return w.Buffer.BuildBytes(), w.Error
}

// MarshalEasyJSON supports easyjson.Marshaler interface
func (v CreateDeliveryResponseDto) MarshalEasyJSON(w *jwriter.Writer) {
	easyjson56de76c1EncodeGithubComAquagoAquagoInternalAppServiceClients13(w, v)
}

// UnmarshalJSON supports json.Unmarshaler interface
func (v *CreateDeliveryResponseDto) UnmarshalJSON(data []byte) error {
	r := jlexer.Lexer{Data: data}
	easyjson56de76c1DecodeGithubComAquagoAquagoInternalAppServiceClients13(&r, v)
	return r.Error()
}

// UnmarshalEasyJSON supports easyjson.Unmarshaler interface
func (v *CreateDeliveryResponseDto) UnmarshalEasyJSON(l *jlexer.Lexer) {
	easyjson56de76c1DecodeGithubComAquagoAquagoInternalAppServiceClients13(l, v)
}
func easyjson56de76c1DecodeGithubComAquagoAquagoInternalAppServiceClients14(in *jlexer.Lexer, out *CreateDeliveryRequestDto) {
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
		case "p_user_id":
			if in.IsNull() {
				in.Skip()
			} else {
				out.UserID = string(in.String())
			}
		case "p_container_id":
			if in.IsNull() {
				in.Skip()
			} else {
				out.ContainerID = string(in.String())
			}
		case "p_volume":
			if in.IsNull() {
				in.Skip()
			} else {
				out.Volume = int(in.Int())
			}
		case "p_amount":
			if in.IsNull() {
				in.Skip()
			} else {
				out.Amount = float64(in.Float64())
			}
		case "p_address":
			if in.IsNull() {
				in.Skip()
			} else {
				out.Address = string(in.String())
			}
		case "p_location":
			if in.IsNull() {
				in.Skip()
			} else {
				out.Location = string(in.String())
			}
		case "p_payment_method":
			if in.IsNull() {
				in.Skip()
			} else {
				out.PaymentMethod = string(in.String())
			}
		case "p_payment_details":
			if in.IsNull() {
				in.Skip()
			} else {
				out.PaymentDetails = string(in.String())
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
func easyjson56de76c1EncodeGithubComAquagoAquagoInternalAppServiceClients14(out *jwriter.Writer, in CreateDeliveryRequestDto) {
	out.RawByte('{')
	first := true
	_ = first
	{
		const prefix string = ",\"p_user_id\":"
		out.RawString(prefix[1:])
		out.String(string(in.UserID))
	}
	{
		const prefix string = ",\"p_container_id\":"
		out.RawString(prefix)
		out.String(string(in.ContainerID))
	}
	{
		const prefix string = ",\"p_volume\":"
		out.RawString(prefix)
		out.Int(int(in.Volume))
	}
	{
		const prefix string = ",\"p_amount\":"
		out.RawString(prefix)
		out.Float64(float64(in.Amount))
	}
	{
		const prefix string = ",\"p_address\":"
		out.RawString(prefix)
		out.String(string(in.Address))
	}
	{
		const prefix string = ",\"p_location\":"
		out.RawString(prefix)
		out.String(string(in.Location))
	}
	{
		const prefix string = ",\"p_payment_method\":"
		out.RawString(prefix)
		out.String(string(in.PaymentMethod))
	}
	{
		const prefix string = ",\"p_payment_details\":"
		out.RawString(prefix)
		out.String(string(in.PaymentDetails))
	}
	out.RawByte('}')
}

// MarshalJSON supports json.Marshaler interface
func (v CreateDeliveryRequestDto) MarshalJSON() ([]byte, error) {
	w := jwriter.Writer{}
	easyjson56de76c1EncodeGithubComAquagoAquagoInternalAppServiceClients14(&w, v)
	return w.Buffer.BuildBytes(), w.Error
}

// MarshalEasyJSON supports easyjson.Marshaler interface
func (v CreateDeliveryRequestDto) MarshalEasyJSON(w *jwriter.Writer) {
	easyjson56de76c1EncodeGithubComAquagoAquagoInternalAppServiceClients14(w, v)
}

// UnmarshalJSON supports json.Unmarshaler interface
func (v *CreateDeliveryRequestDto) UnmarshalJSON(data []byte) error {
	r := jlexer.Lexer{Data: data}
	easyjson56de76c1DecodeGithubComAquagoAquagoInternalAppServiceClients14(&r, v)
	return r.Error()
}

// UnmarshalEasyJSON supports easyjson.Unmarshaler interface
func (v *CreateDeliveryRequestDto) UnmarshalEasyJSON(l *jlexer.Lexer) {
	easyjson56de76c1DecodeGithubComAquagoAquagoInternalAppServiceClients14(l, v)
}
func easyjson56de76c1DecodeGithubComAquagoAquagoInternalAppServiceClients15(in *jlexer.Lexer, out *ChatMessagesRequestDto) {
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
		case "p_delivery_id":
			if in.IsNull() {
				in.Skip()
			} else {
				out.DeliveryID = string(in.String())
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
func easyjson56de76c1EncodeGithubComAquagoAquagoInternalAppServiceClients15(out *jwriter.Writer, in ChatMessagesRequestDto) {
	out.RawByte('{')
	first := true
	_ = first
	{
		const prefix string = ",\"p_delivery_id\":"
		out.RawString(prefix[1:])
		out.String(string(in.DeliveryID))
	}
	out.RawByte('}')
}

// MarshalJSON supports json.Marshaler interface
func (v ChatMessagesRequestDto) MarshalJSON() ([]byte, error) {
	w := jwriter.Writer{}
	easyjson56de76c1EncodeGithubComAquagoAquagoInternalAppServiceClients15(&w, v)
	return w.Buffer.BuildBytes(), w.Error
}

// MarshalEasyJSON supports easyjson.Marshaler interface
func (v ChatMessagesRequestDto) MarshalEasyJSON(w *jwriter.Writer) {
	easyjson56de76c1EncodeGithubComAquagoAquagoInternalAppServiceClients15(w, v)
}

// UnmarshalJSON supports json.Unmarshaler interface
func (v *ChatMessagesRequestDto) UnmarshalJSON(data []byte) error {
	r := jlexer.Lexer{Data: data}
	easyjson56de76c1DecodeGithubComAquagoAquagoInternalAppServiceClients15(&r, v)
	return r.Error()
}

// UnmarshalEasyJSON supports easyjson.Unmarshaler interface
func (v *ChatMessagesRequestDto) UnmarshalEasyJSON(l *jlexer.Lexer) {
	easyjson56de76c1DecodeGithubComAquagoAquagoInternalAppServiceClients15(l, v)
}
func easyjson56de76c1DecodeGithubComAquagoAquagoInternalAppServiceClients16(in *jlexer.Lexer, out *ChatMessageDtoSlice) {
	isTopLevel := in.IsStart()
	if in.IsNull() {
		in.Skip()
		*out = nil
	} else {
		in.Delim('[')
		if *out == nil {
			if !in.IsDelim(']') {
				*out = make(ChatMessageDtoSlice, 0, 0)
			} else {
				*out = ChatMessageDtoSlice{}
			}
		} else {
			*out = (*out)[:0]
		}
		for !in.IsDelim(']') {
			var v10 ChatMessageDto
			if in.IsNull() {
				in.Skip()
			} else {
				(v10).UnmarshalEasyJSON(in)
			}
			*out = append(*out, v10)
			in.WantComma()
		}
		in.Delim(']')
	}
	if isTopLevel {
		in.Consumed()
	}
}
func easyjson56de76c1EncodeGithubComAquagoAquagoInternalAppServiceClients16(out *jwriter.Writer, in ChatMessageDtoSlice) {
	if in == nil && (out.Flags&jwriter.NilSliceAsEmpty) == 0 {
		out.RawString("null")
	} else {
		out.RawByte('[')
		for v11, v12 := range in {
			if v11 > 0 {
				out.RawByte(',')
			}
			(v12).MarshalEasyJSON(out)
		}
		out.RawByte(']')
	}
}

// MarshalJSON supports json.Marshaler interface
func (v ChatMessageDtoSlice) MarshalJSON() ([]byte, error) {
	w := jwriter.Writer{}
	easyjson56de76c1EncodeGithubComAquagoAquagoInternalAppServiceClients16(&w, v)
	return w.Buffer.BuildBytes(), w.Error
}

// MarshalEasyJSON supports easyjson.Marshaler interface
func (v ChatMessageDtoSlice) MarshalEasyJSON(w *jwriter.Writer) {
	easyjson56de76c1EncodeGithubComAquagoAquagoInternalAppServiceClients16(w, v)
}

// UnmarshalJSON supports json.Unmarshaler interface
func (v *ChatMessageDtoSlice) UnmarshalJSON(data []byte) error {
	r := jlexer.Lexer{Data: data}
	easyjson56de76c1DecodeGithubComAquagoAquagoInternalAppServiceClients16(&r, v)
	return r.Error()
}

// UnmarshalEasyJSON supports easyjson.Unmarshaler interface
func (v *ChatMessageDtoSlice) UnmarshalEasyJSON(l *jlexer.Lexer) {
	easyjson56de76c1DecodeGithubComAquagoAquagoInternalAppServiceClients16(l, v)
}
func easyjson56de76c1DecodeGithubComAquagoAquagoInternalAppServiceClients17(in *jlexer.Lexer, out *ChatMessageDto) {
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
		case "id":
			if in.IsNull() {
				in.Skip()
			} else {
				out.ID = string(in.String())
			}
		case "delivery_id":
			if in.IsNull() {
				in.Skip()
			} else {
				out.DeliveryID = string(in.String())
			}
		case "is_supplier":
			if in.IsNull() {
				in.Skip()
			} else {
				out.IsSupplier = bool(in.Bool())
			}
		case "message":
			if in.IsNull() {
				in.Skip()
			} else {
				out.Message = string(in.String())
			}
		case "created_at":
			if in.IsNull() {
				in.Skip()
			} else {
				if data := in.Raw(); in.Ok() {
					in.AddError((out.CreatedAt).UnmarshalJSON(data))
				}
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
func easyjson56de76c1EncodeGithubComAquagoAquagoInternalAppServiceClients17(out *jwriter.Writer, in ChatMessageDto) {
	out.RawByte('{')
	first := true
	_ = first
	{
		const prefix string = ",\"id\":"
		out.RawString(prefix[1:])
		out.String(string(in.ID))
	}
	{
		const prefix string = ",\"delivery_id\":"
		out.RawString(prefix)
		out.String(string(in.DeliveryID))
	}
	{
		const prefix string = ",\"is_supplier\":"
		out.RawString(prefix)
		out.Bool(bool(in.IsSupplier))
	}
	{
		const prefix string = ",\"message\":"
		out.RawString(prefix)
		out.String(string(in.Message))
	}
	{
		const prefix string = ",\"created_at\":"
		out.RawString(prefix)
		out.Raw((in.CreatedAt).MarshalJSON())
	}
	out.RawByte('}')
}

// MarshalJSON supports json.Marshaler interface
func (v ChatMessageDto) MarshalJSON() ([]byte, error) {
	w := jwriter.Writer{}
	easyjson56de76c1EncodeGithubComAquagoAquagoInternalAppServiceClients17(&w, v)
	return w.Buffer.BuildBytes(), w.Error
}

// MarshalEasyJSON supports easyjson.Marshaler interface
func (v ChatMessageDto) MarshalEasyJSON(w *jwriter.Writer) {
	easyjson56de76c1EncodeGithubComAquagoAquagoInternalAppServiceClients17(w, v)
}

// UnmarshalJSON supports json.Unmarshaler interface
func (v *ChatMessageDto) UnmarshalJSON(data []byte) error {
	r := jlexer.Lexer{Data: data}
	easyjson56de76c1DecodeGithubComAquagoAquagoInternalAppServiceClients17(&r, v)
	return r.Error()
}

// UnmarshalEasyJSON supports easyjson.Unmarshaler interface
func (v *ChatMessageDto) UnmarshalEasyJSON(l *jlexer.Lexer) {
	easyjson56de76c1DecodeGithubComAquagoAquagoInternalAppServiceClients17(l, v)
}
func easyjson56de76c1DecodeGithubComAquagoAquagoInternalAppServiceClients18(in *jlexer.Lexer, out *CancelDeliveryRequestDto) {
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
		case "p_order_id":
			if in.IsNull() {
				in.Skip()
			} else {
				out.OrderID = string(in.String())
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
func easyjson56de76c1EncodeGithubComAquagoAquagoInternalAppServiceClients18(out *jwriter.Writer, in CancelDeliveryRequestDto) {
	out.RawByte('{')
	first := true
	_ = first
	{
		const prefix string = ",\"p_order_id\":"
		out.RawString(prefix[1:])
		out.String(string(in.OrderID))
	}
	out.RawByte('}')
}

// MarshalJSON supports json.Marshaler interface
func (v CancelDeliveryRequestDto) MarshalJSON() ([]byte, error) {
	w := jwriter.Writer{}
	easyjson56de76c1EncodeGithubComAquagoAquagoInternalAppServiceClients18(&w, v)
	return w.Buffer.BuildBytes(), w.Error
}

// MarshalEasyJSON supports easyjson.Marshaler interface
func (v CancelDeliveryRequestDto) MarshalEasyJSON(w *jwriter.Writer) {
	easyjson56de76c1EncodeGithubComAquagoAquagoInternalAppServiceClients18(w, v)
}

// UnmarshalJSON supports json.Unmarshaler interface
func (v *CancelDeliveryRequestDto) UnmarshalJSON(data []byte) error {
	r := jlexer.Lexer{Data: data}
	easyjson56de76c1DecodeGithubComAquagoAquagoInternalAppServiceClients18(&r, v)
	return r.Error()
}

// UnmarshalEasyJSON supports easyjson.Unmarshaler interface
func (v *CancelDeliveryRequestDto) UnmarshalEasyJSON(l *jlexer.Lexer) {
	easyjson56de76c1DecodeGithubComAquagoAquagoInternalAppServiceClients18(l, v)
}
func easyjson56de76c1DecodeGithubComAquagoAquagoInternalAppServiceClients19(in *jlexer.Lexer, out *AuthResponseDto) {
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
		case "access_token":
			if in.IsNull() {
				in.Skip()
			} else {
				out.AccessToken = string(in.String())
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
func easyjson56de76c1EncodeGithubComAquagoAquagoInternalAppServiceClients19(out *jwriter.Writer, in AuthResponseDto) {
	out.RawByte('{')
	first := true
	_ = first
	{
		const prefix string = ",\"access_token\":"
		out.RawString(prefix[1:])
		out.String(string(in.AccessToken))
	}
	out.RawByte('}')
}

// MarshalJSON supports json.Marshaler interface
func (v AuthResponseDto) MarshalJSON() ([]byte, error) {
	w := jwriter.Writer{}
	easyjson56de76c1EncodeGithubComAquagoAquagoInternalAppServiceClients19(&w, v)
	return w.Buffer.BuildBytes(), w.Error
}

// MarshalEasyJSON supports easyjson.Marshaler interface
func (v AuthResponseDto) MarshalEasyJSON(w *jwriter.Writer) {
	easyjson56de76c1EncodeGithubComAquagoAquagoInternalAppServiceClients19(w, v)
}

// UnmarshalJSON supports json.Unmarshaler interface
func (v *AuthResponseDto) UnmarshalJSON(data []byte) error {
	r := jlexer.Lexer{Data: data}
	easyjson56de76c1DecodeGithubComAquagoAquagoInternalAppServiceClients19(&r, v)
	return r.Error()
}

// UnmarshalEasyJSON supports easyjson.Unmarshaler interface
func (v *AuthResponseDto) UnmarshalEasyJSON(l *jlexer.Lexer) {
	easyjson56de76c1DecodeGithubComAquagoAquagoInternalAppServiceClients19(l, v)
}
func easyjson56de76c1DecodeGithubComAquagoAquagoInternalAppServiceClients20(in *jlexer.Lexer, out *AddressDtoSlice) {
	isTopLevel := in.IsStart()
	if in.IsNull() {
		in.Skip()
		*out = nil
	} else {
		in.Delim('[')
		if *out == nil {
			if !in.IsDelim(']') {
				*out = make(AddressDtoSlice, 0, 0)
			} else {
				*out = AddressDtoSlice{}
			}
		} else {
			*out = (*out)[:0]
		}
		for !in.IsDelim(']') {
			var v13 AddressDto
			if in.IsNull() {
				in.Skip()
			} else {
				(v13).UnmarshalEasyJSON(in)
			}
			*out = append(*out, v13)
			in.WantComma()
		}
		in.Delim(']')
	}
	if isTopLevel {
		in.Consumed()
	}
}
func easyjson56de76c1EncodeGithubComAquagoAquagoInternalAppServiceClients20(out *jwriter.Writer, in AddressDtoSlice) {
	if in == nil && (out.Flags&jwriter.NilSliceAsEmpty) == 0 {
		out.RawString("null")
	} else {
		out.RawByte('[')
		for v14, v15 := range in {
			if v14 > 0 {
				out.RawByte(',')
			}
			(v15).MarshalEasyJSON(out)
		}
		out.RawByte(']')
	}
}

// MarshalJSON supports json.Marshaler interface
func (v AddressDtoSlice) MarshalJSON() ([]byte, error) {
	w := jwriter.Writer{}
	easyjson56de76c1EncodeGithubComAquagoAquagoInternalAppServiceClients20(&w, v)
	return w.Buffer.BuildBytes(), w.Error
}

// MarshalEasyJSON supports easyjson.Marshaler interface
func (v AddressDtoSlice) MarshalEasyJSON(w *jwriter.Writer) {
	easyjson56de76c1EncodeGithubComAquagoAquagoInternalAppServiceClients20(w, v)
}

// UnmarshalJSON supports json.Unmarshaler interface
func (v *AddressDtoSlice) UnmarshalJSON(data []byte) error {
	r := jlexer.Lexer{Data: data}
	easyjson56de76c1DecodeGithubComAquagoAquagoInternalAppServiceClients20(&r, v)
	return r.Error()
}

// UnmarshalEasyJSON supports easyjson.Unmarshaler interface
func (v *AddressDtoSlice) UnmarshalEasyJSON(l *jlexer.Lexer) {
	easyjson56de76c1DecodeGithubComAquagoAquagoInternalAppServiceClients20(l, v)
}
func easyjson56de76c1DecodeGithubComAquagoAquagoInternalAppServiceClients21(in *jlexer.Lexer, out *AddressDto) {
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
		case "id":
			if in.IsNull() {
				in.Skip()
			} else {
				out.ID = string(in.String())
			}
		case "user_id":
			if in.IsNull() {
				in.Skip()
			} else {
				out.UserID = string(in.String())
			}
		case "title":
			if in.IsNull() {
				in.Skip()
			} else {
				out.Title = string(in.String())
			}
		case "address":
			if in.IsNull() {
				in.Skip()
			} else {
				out.Address = string(in.String())
			}
		case "location":
			if in.IsNull() {
				in.Skip()
			} else {
				out.Location = string(in.String())
			}
		case "is_default":
			if in.IsNull() {
				in.Skip()
			} else {
				out.IsDefault = bool(in.Bool())
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
func easyjson56de76c1EncodeGithubComAquagoAquagoInternalAppServiceClients21(out *jwriter.Writer, in AddressDto) {
	out.RawByte('{')
	first := true
	_ = first
	{
		const prefix string = ",\"id\":"
		out.RawString(prefix[1:])
		out.String(string(in.ID))
	}
	{
		const prefix string = ",\"user_id\":"
		out.RawString(prefix)
		out.String(string(in.UserID))
	}
	{
		const prefix string = ",\"title\":"
		out.RawString(prefix)
		out.String(string(in.Title))
	}
	{
		const prefix string = ",\"address\":"
		out.RawString(prefix)
		out.String(string(in.Address))
	}
	{
		const prefix string = ",\"location\":"
		out.RawString(prefix)
		out.String(string(in.Location))
	}
	{
		const prefix string = ",\"is_default\":"
		out.RawString(prefix)
		out.Bool(bool(in.IsDefault))
	}
	out.RawByte('}')
}

// MarshalJSON supports json.Marshaler interface
func (v AddressDto) MarshalJSON() ([]byte, error) {
	w := jwriter.Writer{}
	easyjson56de76c1EncodeGithubComAquagoAquagoInternalAppServiceClients21(&w, v)
	return w.Buffer.BuildBytes(), w.Error
}

// MarshalEasyJSON supports easyjson.Marshaler interface
func (v AddressDto) MarshalEasyJSON(w *jwriter.Writer) {
	easyjson56de76c1EncodeGithubComAquagoAquagoInternalAppServiceClients21(w, v)
}

// UnmarshalJSON supports json.Unmarshaler interface
func (v *AddressDto) UnmarshalJSON(data []byte) error {
	r := jlexer.Lexer{Data: data}
	easyjson56de76c1DecodeGithubComAquagoAquagoInternalAppServiceClients21(&r, v)
	return r.Error()
}

// UnmarshalEasyJSON supports easyjson.Unmarshaler interface
func (v *AddressDto) UnmarshalEasyJSON(l *jlexer.Lexer) {
	easyjson56de76c1DecodeGithubComAquagoAquagoInternalAppServiceClients21(l, v)
}
func easyjson56de76c1DecodeGithubComAquagoAquagoInternalAppServiceClients22(in *jlexer.Lexer, out *AddAddressRequestDto) {
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
		case "p_user_id":
			if in.IsNull() {
				in.Skip()
			} else {
				out.UserID = string(in.String())
			}
		case "p_title":
			if in.IsNull() {
				in.Skip()
			} else {
				out.Title = string(in.String())
			}
		case "p_address":
			if in.IsNull() {
				in.Skip()
			} else {
				out.Address = string(in.String())
			}
		case "p_latitude":
			if in.IsNull() {
				in.Skip()
			} else {
				out.Latitude = float64(in.Float64())
			}
		case "p_longitude":
			if in.IsNull() {
				in.Skip()
			} else {
				out.Longitude = float64(in.Float64())
			}
		case "p_is_default":
			if in.IsNull() {
				in.Skip()
			} else {
				out.IsDefault = bool(in.Bool())
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
func easyjson56de76c1EncodeGithubComAquagoAquagoInternalAppServiceClients22(out *jwriter.Writer, in AddAddressRequestDto) {
	out.RawByte('{')
	first := true
	_ = first
	{
		const prefix string = ",\"p_user_id\":"
		out.RawString(prefix[1:])
		out.String(string(in.UserID))
	}
	{
		const prefix string = ",\"p_title\":"
		out.RawString(prefix)
		out.String(string(in.Title))
	}
	{
		const prefix string = ",\"p_address\":"
		out.RawString(prefix)
		out.String(string(in.Address))
	}
	{
		const prefix string = ",\"p_latitude\":"
		out.RawString(prefix)
		out.Float64(float64(in.Latitude))
	}
	{
		const prefix string = ",\"p_longitude\":"
		out.RawString(prefix)
		out.Float64(float64(in.Longitude))
	}
	{
		const prefix string = ",\"p_is_default\":"
		out.RawString(prefix)
		out.Bool(bool(in.IsDefault))
	}
	out.RawByte('}')
}

// MarshalJSON supports json.Marshaler interface
func (v AddAddressRequestDto) MarshalJSON() ([]byte, error) {
	w := jwriter.Writer{}
	easyjson56de76c1EncodeGithubComAquagoAquagoInternalAppServiceClients22(&w, v)
	return w.Buffer.BuildBytes(), w.Error
}

// MarshalEasyJSON supports easyjson.Marshaler interface
func (v AddAddressRequestDto) MarshalEasyJSON(w *jwriter.Writer) {
	easyjson56de76c1EncodeGithubComAquagoAquagoInternalAppServiceClients22(w, v)
}

// UnmarshalJSON supports json.Unmarshaler interface
func (v *AddAddressRequestDto) UnmarshalJSON(data []byte) error {
	r := jlexer.Lexer{Data: data}
	easyjson56de76c1DecodeGithubComAquagoAquagoInternalAppServiceClients22(&r, v)
	return r.Error()
}

// UnmarshalEasyJSON supports easyjson.Unmarshaler interface
func (v *AddAddressRequestDto) UnmarshalEasyJSON(l *jlexer.Lexer) {
	easyjson56de76c1DecodeGithubComAquagoAquagoInternalAppServiceClients22(l, v)
}
