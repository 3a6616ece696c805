package readers

import "encoding/xml"

// xmlTable mirrors the CF standard name table XML layout:
//
//	<standard_name_table>
//	  <version_number>79</version_number>
//	  <last_modified>2022-03-19T15:25:54Z</last_modified>
//	  <contact>support@ceda.ac.uk</contact>
//	  <entry id="air_temperature">
//	    <canonical_units>K</canonical_units>
//	    <description>...</description>
//	  </entry>
//	  <alias id="old_name"><entry_id>new_name</entry_id></alias>
//	</standard_name_table>
type xmlTable struct {
	XMLName       xml.Name
	Title         string     `xml:"title"`
	Version       *string    `xml:"version"`
	VersionNumber *string    `xml:"version_number"`
	LastModified  string     `xml:"last_modified"`
	Institution   string     `xml:"institution"`
	Contact       *string    `xml:"contact"`
	Entries       []xmlEntry `xml:"entry"`
	Aliases       []xmlAlias `xml:"alias"`
}

type xmlEntry struct {
	ID             string  `xml:"id,attr"`
	CanonicalUnits *string `xml:"canonical_units"`
	Description    *string `xml:"description"`
}

type xmlAlias struct {
	ID      string `xml:"id,attr"`
	EntryID string `xml:"entry_id"`
}
