package locale

// Common returns Tables filled with the locale-neutral tables: credit card
// test numbers, documentation domains and IPv4 prefixes, user agents, HTTP
// status codes, ISO 3166 alpha-3 country codes, time zones and file
// extensions. Locales start from it and fill in the rest.
func Common() *Tables {
	return &Tables{
		CountryCodes: countryCodes,
		TimeZones:    timeZones,
		CreditCards:  creditCards,
		Domains:      domains,
		IPv4Prefixes: ipv4Prefixes,
		UserAgents:   userAgents,
		StatusCodes:  statusCodes,
		Extensions:   extensions,
	}
}

var creditCards = []string{
	"4111111111111111", "4242424242424242", "4012888888881881", "4222222222222",
	"5555555555554444", "5105105105105100", "5431111111111111", "5111111111111118",
	"3530111333300000", "3566002020360505", "378282246310005", "371449635398431",
	"341111111111111", "30569309025904", "38520000023237", "6111111111111116",
	"6011111111111117", "6011000990139424", "6011601160116611", "1354 1234 5678 911",
	"5033 9619 8909 17", "5868 2416 0825 5333 38", "6759 0000 0000 0000 00",
	"6759 0000 0000 0000 000", "6304985028090561515", "378734493671000",
	"4000000000000010", "4000000000000028", "4000000000000036", "4000000000000101",
	"4000000000000341", "4000000000000002", "4000000000000127", "4000000000000069",
	"4000000000000119", "6759 4111 0000 0008", "6759 5600 4500 5727 054",
	"5641 8211 1116 6669", "6334 5898 9800 0001", "6767 8200 9988 0077 06",
	"6334 9711 1111 1114",
}

// RFC 2606 and RFC 5737 reserve these for documentation.
var (
	domains      = []string{"example.com", "example.net", "example.org"}
	ipv4Prefixes = [][3]byte{{192, 0, 2}, {198, 51, 100}, {203, 0, 113}}
)

var userAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:125.0) Gecko/20100101 Firefox/125.0",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.4 Safari/605.1.15",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36",
	"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36",
	"Mozilla/5.0 (X11; Ubuntu; Linux x86_64; rv:125.0) Gecko/20100101 Firefox/125.0",
	"Mozilla/5.0 (iPhone; CPU iPhone OS 17_4 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.4 Mobile/15E148 Safari/604.1",
	"Mozilla/5.0 (iPad; CPU OS 17_4 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.4 Mobile/15E148 Safari/604.1",
	"Mozilla/5.0 (Linux; Android 14; Pixel 8) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Mobile Safari/537.36",
	"Mozilla/5.0 (Linux; Android 13; SM-S911B) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Mobile Safari/537.36",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36 Edg/124.0.0.0",
	"Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)",
	"curl/8.6.0",
}

var statusCodes = []int{
	100, 101, 102, 103,
	200, 201, 202, 203, 204, 205, 206, 207, 208, 226,
	300, 301, 302, 303, 304, 305, 306, 307, 308,
	400, 401, 402, 403, 404, 405, 406, 407, 408, 409, 410, 411, 412, 413, 414, 415, 416, 417,
	418, 421, 422, 423, 424, 425, 426, 428, 429, 431, 451,
	500, 501, 502, 503, 504, 505, 506, 507, 508, 510, 511,
}

var countryCodes = []string{
	"ABW", "AFG", "AGO", "AIA", "ALA", "ALB", "AND", "ARE", "ARG", "ARM", "ASM", "ATA",
	"ATF", "ATG", "AUS", "AUT", "AZE", "BDI", "BEL", "BEN", "BFA", "BGD", "BGR", "BHR", "BHS",
	"BIH", "BLM", "BLR", "BLZ", "BMU", "BOL", "BRA", "BRB", "BRN", "BTN", "BVT", "BWA", "CAF",
	"CAN", "CCK", "CHE", "CHL", "CHN", "CIV", "CMR", "COD", "COG", "COK", "COL", "COM", "CPV",
	"CRI", "CUB", "CXR", "CYM", "CYP", "CZE", "DEU", "DJI", "DMA", "DNK", "DOM", "DZA", "ECU",
	"EGY", "ERI", "ESH", "ESP", "EST", "ETH", "FIN", "FJI", "FLK", "FRA", "FRO", "FSM", "GAB",
	"GBR", "GEO", "GGY", "GHA", "GIB", "GIN", "GLP", "GMB", "GNB", "GNQ", "GRC", "GRD", "GRL",
	"GTM", "GUF", "GUM", "GUY", "HKG", "HMD", "HND", "HRV", "HTI", "HUN", "IDN", "IMN", "IND",
	"IOT", "IRL", "IRN", "IRQ", "ISL", "ISR", "ITA", "JAM", "JEY", "JOR", "JPN", "KAZ", "KEN",
	"KGZ", "KHM", "KIR", "KNA", "KOR", "KWT", "LAO", "LBN", "LBR", "LBY", "LCA", "LIE", "LKA",
	"LSO", "LTU", "LUX", "LVA", "MAC", "MAF", "MAR", "MCO", "MDA", "MDG", "MDV", "MEX", "MHL",
	"MKD", "MLI", "MLT", "MMR", "MNE", "MNG", "MNP", "MOZ", "MRT", "MSR", "MTQ", "MUS", "MWI",
	"MYS", "MYT", "NAM", "NCL", "NER", "NFK", "NGA", "NIC", "NIU", "NLD", "NOR", "NPL", "NRU",
	"NZL", "OMN", "PAK", "PAN", "PCN", "PER", "PHL", "PLW", "PNG", "POL", "PRI", "PRK", "PRT",
	"PRY", "PSE", "PYF", "QAT", "REU", "ROU", "RUS", "RWA", "SAU", "SDN", "SEN", "SGP", "SGS",
	"SHN", "SJM", "SLB", "SLE", "SLV", "SMR", "SOM", "SPM", "SRB", "STP", "SUR", "SVK", "SVN",
	"SWE", "SWZ", "SYC", "SYR", "TCA", "TCD", "TGO", "THA", "TJK", "TKL", "TKM", "TLS", "TON",
	"TTO", "TUN", "TUR", "TUV", "TWN", "TZA", "UGA", "UKR", "UMI", "URY", "USA", "UZB", "VAT",
	"VCT", "VEN", "VGB", "VIR", "VNM", "VUT", "WLF", "WSM", "YEM", "ZAF", "ZMB", "ZWE",
}

var timeZones = []string{
	"Etc/GMT+12", "Etc/GMT+11", "Pacific/Honolulu", "America/Anchorage", "America/Los_Angeles",
	"America/Chihuahua", "America/Phoenix", "America/Denver", "America/Guatemala", "America/Chicago",
	"America/Regina", "America/Mexico_City", "America/Bogota", "America/Indiana/Indianapolis",
	"America/New_York", "America/Caracas", "America/Halifax", "America/Asuncion", "America/La_Paz",
	"America/Cuiaba", "America/Santiago", "America/St_Johns", "America/Sao_Paulo", "America/Nuuk",
	"America/Cayenne", "America/Argentina/Buenos_Aires", "America/Montevideo", "Etc/GMT+2",
	"Atlantic/Cape_Verde", "Atlantic/Azores", "Africa/Casablanca", "Atlantic/Reykjavik",
	"Europe/London", "Etc/GMT", "Europe/Berlin", "Europe/Paris", "Africa/Lagos", "Europe/Budapest",
	"Europe/Warsaw", "Africa/Windhoek", "Europe/Istanbul", "Europe/Kyiv", "Africa/Cairo",
	"Asia/Damascus", "Asia/Amman", "Africa/Johannesburg", "Asia/Jerusalem", "Asia/Beirut",
	"Asia/Baghdad", "Europe/Minsk", "Asia/Riyadh", "Africa/Nairobi", "Asia/Tehran", "Europe/Moscow",
	"Asia/Tbilisi", "Asia/Yerevan", "Asia/Dubai", "Asia/Baku", "Indian/Mauritius", "Asia/Kabul",
	"Asia/Tashkent", "Asia/Karachi", "Asia/Colombo", "Asia/Kolkata", "Asia/Kathmandu", "Asia/Almaty",
	"Asia/Dhaka", "Asia/Yekaterinburg", "Asia/Yangon", "Asia/Bangkok", "Asia/Novosibirsk",
	"Asia/Krasnoyarsk", "Asia/Ulaanbaatar", "Asia/Shanghai", "Australia/Perth", "Asia/Singapore",
	"Asia/Taipei", "Asia/Irkutsk", "Asia/Seoul", "Asia/Tokyo", "Australia/Darwin",
	"Australia/Adelaide", "Australia/Hobart", "Asia/Yakutsk", "Australia/Brisbane",
	"Pacific/Port_Moresby", "Australia/Sydney", "Asia/Vladivostok", "Pacific/Guadalcanal",
	"Etc/GMT-12", "Pacific/Fiji", "Asia/Magadan", "Pacific/Auckland", "Pacific/Tongatapu",
	"Pacific/Apia",
}

var extensions = []string{
	"htm", "html", "shtml", "mht", "xml", "xhtml", "xht", "txt", "asc", "sjis", "css", "xsl",
	"js", "pl", "pm", "cgi", "asp", "bat", "sh", "php", "tcl", "vbs", "gif", "jpg", "jpeg",
	"jpe", "jfif", "png", "bmp", "dib", "rle", "ico", "ai", "art", "cam", "cdr", "cgm", "cmp",
	"dpx", "fal", "q0", "fpx", "j6i", "mac", "mag", "maki", "mng", "pcd", "pct", "pic", "pict",
	"pcx", "pmp", "pnm", "psd", "ras", "sj1", "tif", "tiff", "nsk", "tga", "wmf", "wpg", "xbm",
	"xpm", "mp3", "mid", "midi", "wav", "aif", "aiff", "aifc", "au", "snd", "mov", "qt", "mpg",
	"mpeg", "wm", "wma", "wmv", "asf", "wax", "wvx", "asx", "ra", "rv", "rm", "ram", "rmm",
	"rpm", "swf", "avi", "dvr-ms", "scr", "smi", "smil", "vdo", "vrml", "wrl", "lzh", "zip",
	"cab", "tar", "gz", "tgz", "tar.gz", "hqx", "sit", "Z", "uu", "pdf", "doc", "xls", "ppt",
	"pps", "dcr", "dir", "dxr", "dwt", "fla", "jxw", "ppd", "ps", "eps", "rtf", "wri",
	"class", "jar", "java", "c", "cpp", "h", "obj", "hlp", "chm", "man", "exe", "dll", "com",
	"ocx", "sys", "a", "so", "fon", "ttf", "ttc", "ani", "cur", "db", "inf", "ini", "reg",
	"url", "csv", "cnf", "conf", "cf", "log", "dat", "bak", "bin", "dic", "old", "org", "tmp",
}
