package views

import (
	"strconv"

	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"

	"omgagents.ai/web/internal/handlers"
	"omgagents.ai/web/internal/i18n"
	"omgagents.ai/web/internal/middleware"
	"omgagents.ai/web/internal/overlay"
)

// Element ids the contact handlers retarget.
const (
	ContactFormID        = "contact-form"
	ContactStatusID      = "contact-status"
	ContactAttachmentsID = "contact-attachments"
)


func contactModal(tr i18n.Translator, form handlers.ContactForm) g.Node {
	const headID = "contact-modal-title"
	return modalShell(overlay.KindContact, headID,
		gradientHeader(tr, headID, tr.T("contactForm.title"), "#4f46e5", "#9333ea",
			P(Class("mb-1 text-sm text-white/80"), g.Text(tr.T("contactForm.subtitle"))),
		),
		Div(Class("mb-8 grid gap-4 text-sm text-gray-600 sm:grid-cols-3"),
			infoItem("✉️", A(Href("mailto:"+tr.T("contactForm.contactInfo.email")), Class("hover:text-purple-600"), g.Text(tr.T("contactForm.contactInfo.email")))),
			infoItem("📍", g.Text(tr.T("contactForm.contactInfo.location"))),
			infoItem("🕘", g.Group([]g.Node{
				Span(Class("font-medium"), g.Text(tr.T("contactForm.contactInfo.businessHours")+": ")),
				g.Text(tr.T("contactForm.contactInfo.businessHoursValue")),
			})),
		),
		ContactForm(tr, form),
	)
}

func infoItem(icon string, body g.Node) g.Node {
	return Div(Class("flex items-center gap-2"), Span(Aria("hidden", "true"), g.Text(icon)), Span(body))
}

// ContactForm renders the form. Successful submissions swap the whole form
// for a fresh one; rejections retarget only the status element.
func ContactForm(tr i18n.Translator, form handlers.ContactForm) g.Node {
	v := form.Values
	return Form(ID(ContactFormID), Method("post"), Action("/contact"), g.Attr("enctype", "multipart/form-data"),
		hxPost("/contact"), hxEncoding("multipart/form-data"), hxTarget("this"), hxSwap("outerHTML"),
		hxDisabledElt("find button[type=submit]"),
		Class("space-y-6"),
		Input(Type("hidden"), Name(middleware.CSRFFormField), Value(form.CSRFToken)),
		Input(Type("hidden"), Name("securityCheck"), Value("human")),
		honeypots(),
		Div(Class("grid gap-6 md:grid-cols-2"),
			textField("contact-name", "name", "text", tr.T("contactForm.form.name"), tr.T("contactForm.form.namePlaceholder"), v.Name, true, "name"),
			textField("contact-email", "email", "email", tr.T("contactForm.form.email"), tr.T("contactForm.form.emailPlaceholder"), v.Email, true, "email"),
		),
		textField("contact-company", "company", "text", tr.T("contactForm.form.company"), tr.T("contactForm.form.companyPlaceholder"), v.Company, false, "organization"),
		Div(
			Div(Class("mb-2 flex items-center justify-between"),
				Label(For("contact-message"), Class("text-sm font-medium text-gray-700"), g.Text(tr.T("contactForm.form.message")+" *")),
				Button(Type("button"), Class("text-xs text-purple-700 hover:text-purple-500"),
					Data("toggle-textarea", "contact-message"),
					Data("label-expand", tr.T("contactForm.form.expandTextarea")),
					Data("label-compact", tr.T("contactForm.form.compactTextarea")),
					g.Text(tr.T("contactForm.form.expandTextarea")),
				),
			),
			Textarea(ID("contact-message"), Name("message"), Required(), g.Attr("rows", "5"), g.Attr("maxlength", "2000"),
				Placeholder(tr.T("contactForm.form.messagePlaceholder")),
				Class("w-full rounded-lg border border-gray-300 px-4 py-3 focus:border-purple-500 focus:outline-none"),
				g.Text(v.Message),
			),
			P(Class("mt-2 text-xs text-gray-500"), g.Text(tr.T("contactForm.form.messageTip"))),
		),
		Div(Class("grid gap-6 md:grid-cols-2"),
			attachmentsField(tr, form),
			securityField(tr),
		),
		ContactStatus(tr, form.Status),
		Button(Type("submit"), Class("btn btn-primary w-full"),
			Span(Class("submit-label"), g.Text(tr.T("contactForm.form.submitButton"))),
			Span(Class("htmx-indicator"), g.Text(tr.T("contactForm.form.submittingButton"))),
		),
	)
}

// honeypots are hidden from people; bots that fill every input trip them.
func honeypots() g.Node {
	field := func(name string) g.Node {
		return Input(Type("text"), Name(name), TabIndex("-1"), AutoComplete("off"), Value(""))
	}
	return Div(Class("hp-field"), Aria("hidden", "true"), Style("position:absolute;left:-10000px;width:1px;height:1px;overflow:hidden"),
		field("botField"),
		field("website"),
		field("url"),
	)
}

func textField(id, name, typ, label, placeholder, value string, required bool, autocomplete string) g.Node {
	text := label
	if required {
		text += " *"
	}
	return Div(
		Label(For(id), Class("mb-2 block text-sm font-medium text-gray-700"), g.Text(text)),
		Input(ID(id), Type(typ), Name(name), Value(value), Placeholder(placeholder), AutoComplete(autocomplete),
			g.If(required, Required()),
			Class("w-full rounded-lg border border-gray-300 px-4 py-3 focus:border-purple-500 focus:outline-none"),
		),
	)
}

func attachmentsField(tr i18n.Translator, form handlers.ContactForm) g.Node {
	return Div(
		Span(Class("mb-3 block text-sm font-medium text-gray-700"), g.Text("📎 "+tr.T("contactForm.form.attachments"))),
		Div(Class("dropzone rounded-lg border-2 border-dashed border-gray-300 p-4 text-center hover:border-gray-400"),
			Data("dropzone", "contact-files"),
			Div(Class("mb-2 text-2xl"), Aria("hidden", "true"), g.Text("📎")),
			P(Class("mb-1 text-sm text-gray-600"),
				g.Text(tr.T("contactForm.form.attachmentsDragText")+" "),
				Label(Class("cursor-pointer text-purple-600 hover:text-purple-500"),
					g.Text(tr.T("contactForm.form.attachmentsBrowseText")),
					Input(ID("contact-files"), Type("file"), Name("attachments"), g.Attr("multiple"), g.Attr("accept", form.Accept),
						Class("sr-only"),
						Data("max-files", strconv.Itoa(form.MaxFiles)),
						hxPost("/contact/attachments"), hxTrigger("change"), hxEncoding("multipart/form-data"),
						hxTarget("#"+ContactAttachmentsID), hxSwap("outerHTML"),
					),
				),
			),
			P(Class("text-xs text-gray-500"), g.Text(tr.T("contactForm.form.attachmentsInfo"))),
		),
		AttachmentList(tr, form.Attachments, nil),
	)
}

// AttachmentList renders the selected files, or the rejection for the batch.
func AttachmentList(tr i18n.Translator, rows []handlers.AttachmentInfo, status *handlers.FormStatus) g.Node {
	var alert g.Node
	if status != nil && !status.Success {
		alert = P(Class("text-sm text-red-600"), Role("alert"), Data("reject", "attachments"), g.Text(status.Message))
	}
	return Div(ID(ContactAttachmentsID), Class("mt-3 space-y-2"),
		alert,
		g.Map(rows, func(row handlers.AttachmentInfo) g.Node {
			return Div(Class("flex items-center justify-between rounded-lg bg-gray-100 p-2"), Data("attachment", row.Name),
				Div(Class("flex items-center gap-2"),
					Span(Class("text-sm"), Aria("hidden", "true"), g.Text(row.Icon)),
					Div(
						P(Class("text-xs text-gray-700"), g.Text(row.Name)),
						P(Class("text-xs text-gray-500"), g.Text(row.Size)),
					),
				),
			)
		}),
	)
}

func securityField(tr i18n.Translator) g.Node {
	check := func(id, name, label string) g.Node {
		return Label(For(id), Class("flex items-start gap-3 text-sm text-gray-700"),
			Input(ID(id), Type("checkbox"), Name(name), Value("on"), Required(), Class("mt-1")),
			Span(g.Text(label)),
		)
	}
	return Div(
		Span(Class("mb-3 block text-sm font-medium text-gray-700"), g.Text("🔒 "+tr.T("contactForm.form.securityTitle"))),
		Div(Class("space-y-3 rounded-lg border border-gray-200 bg-gray-50 p-4"),
			P(Class("text-xs text-gray-600"), g.Text(tr.T("contactForm.form.securityDescription"))),
			check("human-verification-1", "humanVerification1", tr.T("contactForm.form.securityCheck1")),
			check("human-verification-2", "humanVerification2", tr.T("contactForm.form.securityCheck2")),
			P(Class("text-xs text-gray-500"), g.Text(tr.T("contactForm.form.securityNote"))),
		),
	)
}

// ContactStatus renders the inline status line. A success message fetches an
// empty replacement once st.ClearAfter has passed.
func ContactStatus(tr i18n.Translator, st *handlers.FormStatus) g.Node {
	if st == nil {
		return Div(ID(ContactStatusID), Role("status"), Aria("live", "polite"))
	}
	return Div(ID(ContactStatusID), Role("status"), Aria("live", "polite"),
		c.Classes{"rounded-lg p-4 text-sm": true, "bg-green-50 text-green-800": st.Success, "bg-red-50 text-red-700": !st.Success},
		Data("status", statusName(st)),
		g.If(st.Success, g.Group([]g.Node{
			hxGet("/contact/status"), hxTrigger("load delay:" + strconv.FormatInt(st.ClearAfter.Milliseconds(), 10) + "ms"), hxSwap("outerHTML"),
		})),
		g.Text(st.Message),
	)
}

func statusName(st *handlers.FormStatus) string {
	if st.Success {
		return "success"
	}
	return "error"
}
