package catalog

import "rechnungskern/pkg/models"

// defaultAccounts is the embedded SKR03 chart of accounts, reduced to the
// accounts the expense categorization actually books against. Names keep
// the DATEV convention of embedding the account code as prefix.
var defaultAccounts = []models.LedgerAccount{
	// Anlagevermögen
	{Code: "0027", Name: "0027 EDV-Software", Type: models.AccountTypeAsset, Description: "Entgeltlich erworbene Software und Lizenzen"},
	{Code: "0320", Name: "0320 Pkw", Type: models.AccountTypeAsset, Description: "Personenkraftwagen des Anlagevermögens"},
	{Code: "0420", Name: "0420 Büroeinrichtung", Type: models.AccountTypeAsset, Description: "Büromöbel und Geschäftsausstattung"},
	{Code: "0480", Name: "0480 Geringwertige Wirtschaftsgüter", Type: models.AccountTypeAsset, Description: "GWG bis 800 EUR netto"},

	// Finanz- und Privatkonten
	{Code: "1000", Name: "1000 Kasse", Type: models.AccountTypeAsset, Description: "Barkasse"},
	{Code: "1200", Name: "1200 Bank", Type: models.AccountTypeAsset, Description: "Geschäftskonto laufend"},
	{Code: "1400", Name: "1400 Forderungen aus Lieferungen und Leistungen", Type: models.AccountTypeAsset, Description: "Offene Kundenforderungen"},
	{Code: "1571", Name: "1571 Abziehbare Vorsteuer 7%", Type: models.AccountTypeAsset, Description: "Vorsteuer ermäßigter Steuersatz"},
	{Code: "1576", Name: "1576 Abziehbare Vorsteuer 19%", Type: models.AccountTypeAsset, Description: "Vorsteuer Regelsteuersatz"},
	{Code: "1577", Name: "1577 Vorsteuer nach § 13b UStG", Type: models.AccountTypeAsset, Description: "Vorsteuer aus Leistungen nach § 13b UStG"},
	{Code: "1600", Name: "1600 Verbindlichkeiten aus Lieferungen und Leistungen", Type: models.AccountTypeLiability, Description: "Offene Lieferantenrechnungen"},
	{Code: "1741", Name: "1741 Verbindlichkeiten aus Lohn und Gehalt", Type: models.AccountTypeLiability, Description: "Noch abzuführende Löhne und Gehälter"},
	{Code: "1771", Name: "1771 Umsatzsteuer 7%", Type: models.AccountTypeLiability, Description: "Umsatzsteuer ermäßigter Steuersatz"},
	{Code: "1776", Name: "1776 Umsatzsteuer 19%", Type: models.AccountTypeLiability, Description: "Umsatzsteuer Regelsteuersatz"},
	{Code: "1787", Name: "1787 Umsatzsteuer nach § 13b UStG", Type: models.AccountTypeLiability, Description: "Steuerschuldnerschaft des Leistungsempfängers"},
	{Code: "1790", Name: "1790 Umsatzsteuer-Vorauszahlungen", Type: models.AccountTypeLiability, Description: "Geleistete USt-Vorauszahlungen"},

	// Wareneingang und Fremdleistungen
	{Code: "3100", Name: "3100 Fremdleistungen", Type: models.AccountTypeExpense, Description: "Bezogene Fremdleistungen und Subunternehmer"},
	{Code: "3120", Name: "3120 Bauleistungen eines im Inland ansässigen Unternehmers", Type: models.AccountTypeExpense, Description: "Fremdleistungen nach § 13b UStG"},
	{Code: "3200", Name: "3200 Wareneingang", Type: models.AccountTypeExpense, Description: "Wareneingang ohne Vorsteuerabzug"},
	{Code: "3400", Name: "3400 Wareneingang 19% Vorsteuer", Type: models.AccountTypeExpense, Description: "Wareneingang Regelsteuersatz"},

	// Betriebliche Aufwendungen
	{Code: "4110", Name: "4110 Löhne", Type: models.AccountTypeExpense, Description: "Löhne für gewerbliche Arbeitnehmer"},
	{Code: "4120", Name: "4120 Gehälter", Type: models.AccountTypeExpense, Description: "Gehälter für Angestellte"},
	{Code: "4138", Name: "4138 Beiträge zur Berufsgenossenschaft", Type: models.AccountTypeExpense, Description: "Gesetzliche Unfallversicherung"},
	{Code: "4210", Name: "4210 Miete", Type: models.AccountTypeExpense, Description: "Miete für Geschäftsräume"},
	{Code: "4230", Name: "4230 Heizung", Type: models.AccountTypeExpense, Description: "Heizkosten der Geschäftsräume"},
	{Code: "4240", Name: "4240 Gas, Strom, Wasser", Type: models.AccountTypeExpense, Description: "Energie- und Wasserkosten"},
	{Code: "4250", Name: "4250 Reinigung", Type: models.AccountTypeExpense, Description: "Reinigung der Geschäftsräume"},
	{Code: "4320", Name: "4320 Gewerbesteuer", Type: models.AccountTypeExpense, Description: "Gewerbesteuer laufendes Jahr"},
	{Code: "4340", Name: "4340 Sonstige Betriebssteuern", Type: models.AccountTypeExpense, Description: "Sonstige Steuern und steuerliche Nebenleistungen"},
	{Code: "4360", Name: "4360 Versicherungen", Type: models.AccountTypeExpense, Description: "Betriebliche Sachversicherungen"},
	{Code: "4380", Name: "4380 Beiträge", Type: models.AccountTypeExpense, Description: "Kammer- und Verbandsbeiträge"},
	{Code: "4510", Name: "4510 Kfz-Steuer", Type: models.AccountTypeExpense, Description: "Kraftfahrzeugsteuer"},
	{Code: "4520", Name: "4520 Kfz-Versicherungen", Type: models.AccountTypeExpense, Description: "Versicherungen für Betriebsfahrzeuge"},
	{Code: "4530", Name: "4530 Laufende Kfz-Betriebskosten", Type: models.AccountTypeExpense, Description: "Treibstoff, Wartung, Pflege"},
	{Code: "4600", Name: "4600 Werbekosten", Type: models.AccountTypeExpense, Description: "Werbung und Marketing"},
	{Code: "4610", Name: "4610 Geschenke abzugsfähig", Type: models.AccountTypeExpense, Description: "Geschenke an Geschäftspartner bis 35 EUR"},
	{Code: "4650", Name: "4650 Bewirtungskosten", Type: models.AccountTypeExpense, Description: "Geschäftliche Bewirtung, abzugsfähiger Teil"},
	{Code: "4660", Name: "4660 Reisekosten Arbeitnehmer", Type: models.AccountTypeExpense, Description: "Fahrt- und Übernachtungskosten Arbeitnehmer"},
	{Code: "4670", Name: "4670 Reisekosten Unternehmer", Type: models.AccountTypeExpense, Description: "Fahrt- und Übernachtungskosten Unternehmer"},
	{Code: "4730", Name: "4730 Ausgangsfrachten", Type: models.AccountTypeExpense, Description: "Fracht und Versand an Kunden"},
	{Code: "4806", Name: "4806 Wartungskosten für Hard- und Software", Type: models.AccountTypeExpense, Description: "EDV-Wartung, Hosting, Software-Abos"},
	{Code: "4822", Name: "4822 Abschreibungen auf immaterielle Vermögensgegenstände", Type: models.AccountTypeExpense, Description: "AfA auf Software und Lizenzen"},
	{Code: "4830", Name: "4830 Abschreibungen auf Sachanlagen", Type: models.AccountTypeExpense, Description: "AfA auf Sachanlagevermögen"},
	{Code: "4910", Name: "4910 Porto", Type: models.AccountTypeExpense, Description: "Porto- und Versandkosten"},
	{Code: "4920", Name: "4920 Telefon", Type: models.AccountTypeExpense, Description: "Telefon und Internet"},
	{Code: "4930", Name: "4930 Bürobedarf", Type: models.AccountTypeExpense, Description: "Büromaterial und Verbrauchsmaterial"},
	{Code: "4940", Name: "4940 Zeitschriften, Bücher", Type: models.AccountTypeExpense, Description: "Fachliteratur und Zeitschriften"},
	{Code: "4945", Name: "4945 Fortbildungskosten", Type: models.AccountTypeExpense, Description: "Fortbildung und Schulung"},
	{Code: "4955", Name: "4955 Buchführungskosten", Type: models.AccountTypeExpense, Description: "Buchführung und Lohnabrechnung durch Dritte"},
	{Code: "4957", Name: "4957 Abschluss- und Prüfungskosten", Type: models.AccountTypeExpense, Description: "Jahresabschluss und Steuerberatung"},
	{Code: "4970", Name: "4970 Nebenkosten des Geldverkehrs", Type: models.AccountTypeExpense, Description: "Kontoführung und Bankgebühren"},

	// Erlöse
	{Code: "8125", Name: "8125 Steuerfreie innergemeinschaftliche Lieferungen", Type: models.AccountTypeIncome, Description: "Steuerfreie ig. Lieferungen § 4 Nr. 1b UStG"},
	{Code: "8300", Name: "8300 Erlöse 7%", Type: models.AccountTypeIncome, Description: "Erlöse ermäßigter Steuersatz"},
	{Code: "8337", Name: "8337 Erlöse aus Leistungen nach § 13b UStG", Type: models.AccountTypeIncome, Description: "Erlöse mit Steuerschuldnerschaft des Leistungsempfängers"},
	{Code: "8400", Name: "8400 Erlöse 19%", Type: models.AccountTypeIncome, Description: "Erlöse Regelsteuersatz"},
	{Code: "8120", Name: "8120 Steuerfreie Umsätze § 4 Nr. 8-28 UStG", Type: models.AccountTypeIncome, Description: "Steuerfreie Umsätze ohne Vorsteuerabzug"},
}
