package dictionary

import "github.com/docuflow/docquery/internal/lang"

// Built-in dictionaries for the document-management search domain.
// Expansion candidates are listed in priority order: the first entries are
// the ones most likely to bridge a user's vocabulary to the corpus.

// builtinSynonyms maps query terms to alternative terms per language.
var builtinSynonyms = map[lang.Language]map[string][]string{
	lang.English: {
		// ------------------------------------------------------------------
		// Document vocabulary
		// ------------------------------------------------------------------
		"document": {"file", "record", "paper", "report"},
		"file":     {"document", "record", "attachment"},
		"record":   {"document", "entry", "log", "file"},
		"report":   {"document", "summary", "analysis", "statement"},
		"contract": {"agreement", "deal", "arrangement"},
		"invoice":  {"bill", "receipt", "statement"},
		"policy":   {"procedure", "guideline", "regulation", "rule"},
		"manual":   {"guide", "handbook", "instructions"},
		"memo":     {"memorandum", "note", "notice"},
		"form":     {"template", "application", "sheet"},
		"archive":  {"repository", "storage", "collection", "records"},
		"folder":   {"directory", "binder", "collection"},

		// ------------------------------------------------------------------
		// Infrastructure vocabulary
		// ------------------------------------------------------------------
		"server":   {"infrastructure", "system", "machine", "host"},
		"system":   {"platform", "application", "software", "infrastructure"},
		"network":  {"infrastructure", "connectivity", "lan"},
		"database": {"repository", "datastore", "records", "storage"},
		"storage":  {"archive", "repository", "warehouse"},
		"backup":   {"copy", "archive", "snapshot", "replica"},
		"security": {"protection", "safety", "access control", "compliance"},
		"access":   {"permission", "authorization", "entry"},

		// ------------------------------------------------------------------
		// Workflow vocabulary
		// ------------------------------------------------------------------
		"approval":  {"authorization", "sign-off", "endorsement", "consent"},
		"review":    {"assessment", "evaluation", "audit", "inspection"},
		"workflow":  {"process", "procedure", "pipeline"},
		"task":      {"assignment", "job", "activity", "action item"},
		"deadline":  {"due date", "cutoff", "time limit"},
		"employee":  {"staff", "personnel", "worker", "member"},
		"customer":  {"client", "account", "user"},
		"search":    {"find", "lookup", "query", "retrieval"},
		"find":      {"search", "locate", "discover", "retrieve"},
		"update":    {"modify", "change", "revise", "edit"},
		"delete":    {"remove", "discard", "purge"},
		"important": {"critical", "urgent", "priority", "essential"},
	},
	lang.Arabic: {
		// ------------------------------------------------------------------
		// Arabic document vocabulary
		// ------------------------------------------------------------------
		"مستند": {"وثيقة", "ملف", "تقرير", "سجل"},
		"وثيقة": {"مستند", "ملف", "ورقة"},
		"ملف":   {"مستند", "وثيقة", "سجل"},
		"تقرير": {"مستند", "ملخص", "بيان"},
		"عقد":   {"اتفاقية", "اتفاق", "صفقة"},
		"فاتورة": {"إيصال", "كشف حساب"},
		"سياسة": {"إجراء", "لائحة", "قاعدة"},
		"أرشيف": {"سجلات", "محفوظات", "مستودع"},

		// ------------------------------------------------------------------
		// Arabic infrastructure and workflow vocabulary
		// ------------------------------------------------------------------
		"نظام":   {"منصة", "تطبيق", "برنامج"},
		"خادم":   {"نظام", "جهاز", "بنية تحتية"},
		"شبكة":   {"اتصال", "بنية تحتية"},
		"أمان":   {"حماية", "سلامة", "تحكم بالوصول"},
		"موافقة": {"اعتماد", "تصديق", "إقرار"},
		"مراجعة": {"تقييم", "تدقيق", "فحص"},
		"بحث":    {"استعلام", "استرجاع", "عثور"},
		"موظف":   {"عامل", "كادر", "فرد"},
		"مهمة":   {"عمل", "نشاط", "تكليف"},
	},
}

// builtinAcronyms maps acronyms to their expansions per language.
var builtinAcronyms = map[lang.Language]map[string][]string{
	lang.English: {
		"api":  {"Application Programming Interface", "interface", "service"},
		"ocr":  {"Optical Character Recognition", "text recognition", "scanning"},
		"pdf":  {"Portable Document Format", "document"},
		"dms":  {"Document Management System", "document system"},
		"erp":  {"Enterprise Resource Planning", "business system"},
		"crm":  {"Customer Relationship Management", "customer system"},
		"hr":   {"Human Resources", "personnel"},
		"it":   {"Information Technology", "technology"},
		"sla":  {"Service Level Agreement", "service agreement"},
		"kpi":  {"Key Performance Indicator", "performance metric"},
		"sop":  {"Standard Operating Procedure", "procedure"},
		"nda":  {"Non-Disclosure Agreement", "confidentiality agreement"},
		"po":   {"Purchase Order", "order"},
		"vpn":  {"Virtual Private Network", "secure connection"},
		"sso":  {"Single Sign-On", "unified login"},
		"gdpr": {"General Data Protection Regulation", "data protection"},
	},
	// Arabic business text uses Latin acronyms; no Arabic-script acronyms
	// ship built in. Corpus analysis and user mappings can still add them.
	lang.Arabic: {},
}
