package roster

import "github.com/wyovotewatch/district-alerts-api/internal/models"

// Wyoming is the fixed 2025 session roster loaded by the admin import.
// Source: wyoleg.gov member pages.
var Wyoming = []models.Legislator{
	{Name: "Jim Anderson", Email: "jim.anderson@wyoleg.gov", Party: "R", DistrictCode: "28", Chamber: models.ChamberSenate, Phone: "(307) 267-5775", ProfileURL: "https://wyoleg.gov/Legislators/2025/S/1985", Active: true},
	{Name: "Eric Barlow", Email: "Eric.Barlow@wyoleg.gov", Party: "R", DistrictCode: "23", Chamber: models.ChamberSenate, Phone: "(307) 682-9639", ProfileURL: "https://wyoleg.gov/Legislators/2025/S/1995", Active: true},
	{Name: "Bo Biteman", Email: "Bo.Biteman@wyoleg.gov", Party: "R", DistrictCode: "21", Chamber: models.ChamberSenate, Phone: "(307) 751-6178", ProfileURL: "https://wyoleg.gov/Legislators/2025/S/2044", Active: true},
	{Name: "Brian Boner", Email: "Brian.Boner@wyoleg.gov", Party: "R", DistrictCode: "02", Chamber: models.ChamberSenate, Phone: "(307) 359-0707", ProfileURL: "https://wyoleg.gov/Legislators/2025/S/2021", Active: true},
	{Name: "Evie Brennan", Email: "Evie.Brennan@wyoleg.gov", Party: "R", DistrictCode: "31", Chamber: models.ChamberSenate, Phone: "(307) 630-0887", ProfileURL: "https://wyoleg.gov/Legislators/2025/S/2090", Active: true},
	{Name: "Cale Case", Email: "Cale.Case@wyoleg.gov", Party: "R", DistrictCode: "25", Chamber: models.ChamberSenate, Phone: "(307) 332-7623", ProfileURL: "https://wyoleg.gov/Legislators/2025/S/945", Active: true},
	{Name: "Ed Cooper", Email: "Ed.Cooper@wyoleg.gov", Party: "R", DistrictCode: "20", Chamber: models.ChamberSenate, Phone: "(307) 851-5949", ProfileURL: "https://wyoleg.gov/Legislators/2025/S/2068", Active: true},
	{Name: "Barry Crago", Email: "Barry.Crago@wyoleg.gov", Party: "R", DistrictCode: "22", Chamber: models.ChamberSenate, Phone: "(307) 267-9789", ProfileURL: "https://wyoleg.gov/Legislators/2025/S/2078", Active: true},
	{Name: "Gary Crum", Email: "Gary.Crum@wyoleg.gov", Party: "R", DistrictCode: "10", Chamber: models.ChamberSenate, Phone: "(307) 399-0286", ProfileURL: "https://wyoleg.gov/Legislators/2025/S/2144", Active: true},
	{Name: "Dan Dockstader", Email: "Dan.Dockstader@wyoleg.gov", Party: "R", DistrictCode: "16", Chamber: models.ChamberSenate, Phone: "(307) 885-9705", ProfileURL: "https://wyoleg.gov/Legislators/2025/S/1048", Active: true},
	{Name: "Ogden Driskill", Email: "Ogden.Driskill@wyoleg.gov", Party: "R", DistrictCode: "01", Chamber: models.ChamberSenate, Phone: "(307) 680-5555", ProfileURL: "https://wyoleg.gov/Legislators/2025/S/1972", Active: true},
	{Name: "Tim French", Email: "Tim.French@wyoleg.gov", Party: "R", DistrictCode: "18", Chamber: models.ChamberSenate, Phone: "(307) 202-1785", ProfileURL: "https://wyoleg.gov/Legislators/2025/S/2067", Active: true},
	{Name: "Mike Gierau", Email: "Mike.Gierau@wyoleg.gov", Party: "D", DistrictCode: "17", Chamber: models.ChamberSenate, Phone: "(307) 413-0109", ProfileURL: "https://wyoleg.gov/Legislators/2025/S/2027", Active: true},
	{Name: "Larry Hicks", Email: "Larry.Hicks@wyoleg.gov", Party: "R", DistrictCode: "11", Chamber: models.ChamberSenate, Phone: "(307) 383-7192", ProfileURL: "https://wyoleg.gov/Legislators/2025/S/1963", Active: true},
	{Name: "Lynn Hutchings", Email: "Lynn.Hutchings@wyoleg.gov", Party: "R", DistrictCode: "05", Chamber: models.ChamberSenate, Phone: "(307) 316-0858", ProfileURL: "https://wyoleg.gov/Legislators/2025/S/1997", Active: true},
	{Name: "Bob Ide", Email: "Bob.Ide@wyoleg.gov", Party: "R", DistrictCode: "29", Chamber: models.ChamberSenate, Phone: "(307) 472-0233", ProfileURL: "https://wyoleg.gov/Legislators/2025/S/2089", Active: true},
	{Name: "Stacy Jones", Email: "Stacy.Jones@wyoleg.gov", Party: "R", DistrictCode: "13", Chamber: models.ChamberSenate, Phone: "(307) 371-8182", ProfileURL: "https://wyoleg.gov/Legislators/2025/S/2088", Active: true},
	{Name: "John Kolb", Email: "John.Kolb@wyoleg.gov", Party: "R", DistrictCode: "12", Chamber: models.ChamberSenate, Phone: "(307) 389-0449", ProfileURL: "https://wyoleg.gov/Legislators/2025/S/2066", Active: true},
	{Name: "Bill Landen", Email: "Bill.Landen@wyoleg.gov", Party: "R", DistrictCode: "27", Chamber: models.ChamberSenate, Phone: "(307) 259-4194", ProfileURL: "https://wyoleg.gov/Legislators/2025/S/434", Active: true},
	{Name: "Dan Laursen", Email: "Dan.Laursen@wyoleg.gov", Party: "R", DistrictCode: "19", Chamber: models.ChamberSenate, Phone: "(307) 271-0241", ProfileURL: "https://wyoleg.gov/Legislators/2025/S/2006", Active: true},
	{Name: "Troy McKeown", Email: "Troy.McKeown@wyoleg.gov", Party: "R", DistrictCode: "24", Chamber: models.ChamberSenate, Phone: "(307) 670-3581", ProfileURL: "https://wyoleg.gov/Legislators/2025/S/2069", Active: true},
	{Name: "Tara Nethercott", Email: "Tara.Nethercott@wyoleg.gov", Party: "R", DistrictCode: "04", Chamber: models.ChamberSenate, Phone: "(307) 399-7696", ProfileURL: "https://wyoleg.gov/Legislators/2025/S/2029", Active: true},
	{Name: "Jared Olsen", Email: "Jared.Olsen@wyoleg.gov", Party: "R", DistrictCode: "08", Chamber: models.ChamberSenate, Phone: "(307) 679-8689", ProfileURL: "https://wyoleg.gov/Legislators/2025/S/2035", Active: true},
	{Name: "Stephan Pappas", Email: "Stephan.Pappas@wyoleg.gov", Party: "R", DistrictCode: "07", Chamber: models.ChamberSenate, Phone: "(307) 630-7180", ProfileURL: "https://wyoleg.gov/Legislators/2025/S/2008", Active: true},
	{Name: "Laura Pearson", Email: "Laura.Pearson@wyoleg.gov", Party: "R", DistrictCode: "14", Chamber: models.ChamberSenate, Phone: "(307) 350-5640", ProfileURL: "https://wyoleg.gov/Legislators/2025/S/2138", Active: true},
	{Name: "Chris Rothfuss", Email: "Chris.Rothfuss@wyoleg.gov", Party: "D", DistrictCode: "09", Chamber: models.ChamberSenate, Phone: "(307) 399-3556", ProfileURL: "https://wyoleg.gov/Legislators/2025/S/1971", Active: true},
	{Name: "Tim Salazar", Email: "Tim.Salazar@wyoleg.gov", Party: "R", DistrictCode: "26", Chamber: models.ChamberSenate, Phone: "(307) 220-1213", ProfileURL: "https://wyoleg.gov/Legislators/2025/S/2028", Active: true},
	{Name: "Wendy Schuler", Email: "Wendy.Schuler@wyoleg.gov", Party: "R", DistrictCode: "15", Chamber: models.ChamberSenate, Phone: "(307) 679-6774", ProfileURL: "https://wyoleg.gov/Legislators/2025/S/2062", Active: true},
	{Name: "Charles Scott", Email: "Charles.Scott@wyoleg.gov", Party: "R", DistrictCode: "30", Chamber: models.ChamberSenate, Phone: "(307) 473-2512", ProfileURL: "https://wyoleg.gov/Legislators/2025/S/294", Active: true},
	{Name: "Cheri Steinmetz", Email: "Cheri.Steinmetz@wyoleg.gov", Party: "R", DistrictCode: "03", Chamber: models.ChamberSenate, Phone: "(307) 534-5342", ProfileURL: "https://wyoleg.gov/Legislators/2025/S/2011", Active: true},
	{Name: "Bill Allemand", Email: "Bill.Allemand@wyoleg.gov", Party: "R", DistrictCode: "58", Chamber: models.ChamberHouse, Phone: "(307) 277-0902", ProfileURL: "https://wyoleg.gov/Legislators/2025/H/2114", Active: true},
	{Name: "Ocean Andrew", Email: "Ocean.Andrew@wyoleg.gov", Party: "R", DistrictCode: "46", Chamber: models.ChamberHouse, Phone: "(307) 314-9246", ProfileURL: "https://wyoleg.gov/Legislators/2025/H/2081", Active: true},
	{Name: "Abby Angelos", Email: "Abby.Angelos@wyoleg.gov", Party: "R", DistrictCode: "03", Chamber: models.ChamberHouse, Phone: "(307) 359-5856", ProfileURL: "https://wyoleg.gov/Legislators/2025/H/2091", Active: true},
	{Name: "Dalton Banks", Email: "Dalton.Banks@wyoleg.gov", Party: "R", DistrictCode: "26", Chamber: models.ChamberHouse, Phone: "(307) 272-7255", ProfileURL: "https://wyoleg.gov/Legislators/2025/H/2101", Active: true},
	{Name: "John Bear", Email: "John.Bear@wyoleg.gov", Party: "R", DistrictCode: "31", Chamber: models.ChamberHouse, Phone: "(307) 670-1130", ProfileURL: "https://wyoleg.gov/Legislators/2025/H/2075", Active: true},
	{Name: "Marlene Brady", Email: "Marlene.Brady@wyoleg.gov", Party: "R", DistrictCode: "60", Chamber: models.ChamberHouse, Phone: "(307) 871-4583", ProfileURL: "https://wyoleg.gov/Legislators/2025/H/2143", Active: true},
	{Name: "Laurie Bratten", Email: "Laurie.Bratten@wyoleg.gov", Party: "R", DistrictCode: "51", Chamber: models.ChamberHouse, Phone: "(307) 683-1788", ProfileURL: "https://wyoleg.gov/Legislators/2025/H/2131", Active: true},
	{Name: "Gary Brown", Email: "Gary.Brown@wyoleg.gov", Party: "R", DistrictCode: "41", Chamber: models.ChamberHouse, Phone: "(307) 369-3453", ProfileURL: "https://wyoleg.gov/Legislators/2025/H/2140", Active: true},
	{Name: "Landon Brown", Email: "Landon.Brown@wyoleg.gov", Party: "R", DistrictCode: "09", Chamber: models.ChamberHouse, Phone: "(307) 630-0582", ProfileURL: "https://wyoleg.gov/Legislators/2025/H/2034", Active: true},
	{Name: "Andrew Byron", Email: "Andrew.Byron@wyoleg.gov", Party: "R", DistrictCode: "22", Chamber: models.ChamberHouse, Phone: "(307) 690-2767", ProfileURL: "https://wyoleg.gov/Legislators/2025/H/2099", Active: true},
	{Name: "Elissa Campbell", Email: "Elissa.Campbell@wyoleg.gov", Party: "R", DistrictCode: "56", Chamber: models.ChamberHouse, Phone: "(307) 277-4782", ProfileURL: "https://wyoleg.gov/Legislators/2025/H/2133", Active: true},
	{Name: "Kevin Campbell", Email: "Kevin.Campbell@wyoleg.gov", Party: "R", DistrictCode: "62", Chamber: models.ChamberHouse, Phone: "(307) 267-2038", ProfileURL: "https://wyoleg.gov/Legislators/2025/H/2136", Active: true},
	{Name: "Ken Chestek", Email: "Ken.Chestek@wyoleg.gov", Party: "D", DistrictCode: "13", Chamber: models.ChamberHouse, Phone: "(307) 460-9139", ProfileURL: "https://wyoleg.gov/Legislators/2025/H/2095", Active: true},
	{Name: "Ken Clouston", Email: "Ken.Clouston@wyoleg.gov", Party: "R", DistrictCode: "32", Chamber: models.ChamberHouse, Phone: "(307) 682-4900", ProfileURL: "https://wyoleg.gov/Legislators/2025/H/2104", Active: true},
	{Name: "Marilyn Connolly", Email: "Marilyn.Connolly@wyoleg.gov", Party: "R", DistrictCode: "40", Chamber: models.ChamberHouse, Phone: "(307) 217-0345", ProfileURL: "https://wyoleg.gov/Legislators/2025/H/2127", Active: true},
	{Name: "Bob Davis", Email: "Bob.Davis@wyoleg.gov", Party: "R", DistrictCode: "47", Chamber: models.ChamberHouse, Phone: "(307) 380-6457", ProfileURL: "https://wyoleg.gov/Legislators/2025/H/2110", Active: true},
	{Name: "John Eklund", Email: "John.Eklund@wyoleg.gov", Party: "R", DistrictCode: "10", Chamber: models.ChamberHouse, Phone: "(307) 630-6232", ProfileURL: "https://wyoleg.gov/Legislators/2025/H/1978", Active: true},
	{Name: "McKay Erickson", Email: "McKay.Erickson@wyoleg.gov", Party: "R", DistrictCode: "21", Chamber: models.ChamberHouse, Phone: "(307) 884-6119", ProfileURL: "https://wyoleg.gov/Legislators/2025/H/2122", Active: true},
	{Name: "Lee Filer", Email: "Lee.Filer@wyoleg.gov", Party: "R", DistrictCode: "44", Chamber: models.ChamberHouse, Phone: "(307) 421-9554", ProfileURL: "https://wyoleg.gov/Legislators/2025/H/1990", Active: true},
	{Name: "Rob Geringer", Email: "Rob.Geringer@wyoleg.gov", Party: "R", DistrictCode: "42", Chamber: models.ChamberHouse, Phone: "(307) 317-8995", ProfileURL: "https://wyoleg.gov/Legislators/2025/H/2142", Active: true},
	{Name: "Joel Guggenmos", Email: "Joel.Guggenmos@wyoleg.gov", Party: "R", DistrictCode: "55", Chamber: models.ChamberHouse, Phone: "(307) 488-8564", ProfileURL: "https://wyoleg.gov/Legislators/2025/H/2132", Active: true},
	{Name: "Jeremy Haroldson", Email: "Jeremy.Haroldson@wyoleg.gov", Party: "R", DistrictCode: "04", Chamber: models.ChamberHouse, Phone: "(307) 331-2310", ProfileURL: "https://wyoleg.gov/Legislators/2025/H/2071", Active: true},
	{Name: "Steve Harshman", Email: "steve.harshman@wyoleg.gov", Party: "R", DistrictCode: "37", Chamber: models.ChamberHouse, Phone: "(307) 262-8075", ProfileURL: "https://wyoleg.gov/Legislators/2025/H/717", Active: true},
	{Name: "Scott Heiner", Email: "Scott.Heiner@wyoleg.gov", Party: "R", DistrictCode: "18", Chamber: models.ChamberHouse, Phone: "(307) 870-2859", ProfileURL: "https://wyoleg.gov/Legislators/2025/H/2074", Active: true},
	{Name: "Paul Hoeft", Email: "Paul.Hoeft@wyoleg.gov", Party: "R", DistrictCode: "25", Chamber: models.ChamberHouse, Phone: "(307) 254-2090", ProfileURL: "https://wyoleg.gov/Legislators/2025/H/2124", Active: true},
	{Name: "Julie Jarvis", Email: "Julie.Jarvis@wyoleg.gov", Party: "R", DistrictCode: "57", Chamber: models.ChamberHouse, Phone: "(307) 670-0202", ProfileURL: "https://wyoleg.gov/Legislators/2025/H/2134", Active: true},
	{Name: "Steve Johnson", Email: "Steve.Johnson@wyoleg.gov", Party: "R", DistrictCode: "08", Chamber: models.ChamberHouse, Phone: "(307) 640-0707", ProfileURL: "https://wyoleg.gov/Legislators/2025/H/2118", Active: true},
	{Name: "Tom Kelly", Email: "Tom.Kelly@wyoleg.gov", Party: "R", DistrictCode: "30", Chamber: models.ChamberHouse, Phone: "(307) 461-9304", ProfileURL: "https://wyoleg.gov/Legislators/2025/H/2125", Active: true},
	{Name: "Christopher Knapp", Email: "Chris.Knapp@wyoleg.gov", Party: "R", DistrictCode: "53", Chamber: models.ChamberHouse, Phone: "(307) 660-4566", ProfileURL: "https://wyoleg.gov/Legislators/2025/H/2086", Active: true},
	{Name: "Lloyd Larsen", Email: "Lloyd.Larsen@wyoleg.gov", Party: "R", DistrictCode: "54", Chamber: models.ChamberHouse, Phone: "(307) 321-1221", ProfileURL: "https://wyoleg.gov/Legislators/2025/H/1988", Active: true},
	{Name: "J.T. Larson", Email: "JT.Larson@wyoleg.gov", Party: "R", DistrictCode: "17", Chamber: models.ChamberHouse, Phone: "(307) 389-0162", ProfileURL: "https://wyoleg.gov/Legislators/2025/H/2096", Active: true},
	{Name: "Martha Lawley", Email: "Martha.Lawley@wyoleg.gov", Party: "R", DistrictCode: "27", Chamber: models.ChamberHouse, Phone: "(307) 431-1272", ProfileURL: "https://wyoleg.gov/Legislators/2025/H/2102", Active: true},
	{Name: "Jayme Lien", Email: "Jayme.Lien@wyoleg.gov", Party: "R", DistrictCode: "38", Chamber: models.ChamberHouse, Phone: "(307) 267-5675", ProfileURL: "https://wyoleg.gov/Legislators/2025/H/2126", Active: true},
	{Name: "Tony Locke", Email: "Tony.Locke@wyoleg.gov", Party: "R", DistrictCode: "35", Chamber: models.ChamberHouse, Phone: "(307) 277-9906", ProfileURL: "https://wyoleg.gov/Legislators/2025/H/2106", Active: true},
	{Name: "Ann Lucas", Email: "Ann.Lucas@wyoleg.gov", Party: "R", DistrictCode: "43", Chamber: models.ChamberHouse, Phone: "(307) 214-9199", ProfileURL: "https://wyoleg.gov/Legislators/2025/H/2128", Active: true},
	{Name: "Darin McCann", Email: "Darin.McCann@wyoleg.gov", Party: "R", DistrictCode: "48", Chamber: models.ChamberHouse, Phone: "(307) 899-2270", ProfileURL: "https://wyoleg.gov/Legislators/2025/H/2130", Active: true},
	{Name: "Chip Neiman", Email: "Chip.Neiman@wyoleg.gov", Party: "R", DistrictCode: "01", Chamber: models.ChamberHouse, Phone: "(307) 290-0366", ProfileURL: "https://wyoleg.gov/Legislators/2025/H/2070", Active: true},
	{Name: "Bob Nicholas", Email: "Bob.Nicholas@wyoleg.gov", Party: "R", DistrictCode: "07", Chamber: models.ChamberHouse, Phone: "(307) 851-7774", ProfileURL: "https://wyoleg.gov/Legislators/2025/H/1980", Active: true},
	{Name: "Pepper Ottman", Email: "Pepper.Ottman@wyoleg.gov", Party: "R", DistrictCode: "34", Chamber: models.ChamberHouse, Phone: "(307) 851-7711", ProfileURL: "https://wyoleg.gov/Legislators/2025/H/2076", Active: true},
	{Name: "Ken Pendergraft", Email: "Ken.Pendergraft@wyoleg.gov", Party: "R", DistrictCode: "29", Chamber: models.ChamberHouse, Phone: "(307) 461-2436", ProfileURL: "https://wyoleg.gov/Legislators/2025/H/2103", Active: true},
	{Name: "Ivan Posey", Email: "Ivan.Posey@wyoleg.gov", Party: "D", DistrictCode: "33", Chamber: models.ChamberHouse, Phone: "(307) 349-1547", ProfileURL: "https://wyoleg.gov/Legislators/2025/H/2141", Active: true},
	{Name: "Karlee Provenza", Email: "Karlee.Provenza@wyoleg.gov", Party: "D", DistrictCode: "45", Chamber: models.ChamberHouse, Phone: "(307) 977-0202", ProfileURL: "https://wyoleg.gov/Legislators/2025/H/2080", Active: true},
	{Name: "J.R. Riggins", Email: "JR.Riggins@wyoleg.gov", Party: "R", DistrictCode: "59", Chamber: models.ChamberHouse, Phone: "(307) 262-8446", ProfileURL: "https://wyoleg.gov/Legislators/2025/H/2135", Active: true},
	{Name: "Rachel Rodriguez-Williams", Email: "Rachel.Rodriguez-Williams@wyoleg.gov", Party: "R", DistrictCode: "50", Chamber: models.ChamberHouse, Phone: "(307) 250-5008", ProfileURL: "https://wyoleg.gov/Legislators/2025/H/2083", Active: true},
	{Name: "Mike Schmid", Email: "Mike.Schmid@wyoleg.gov", Party: "R", DistrictCode: "20", Chamber: models.ChamberHouse, Phone: "(307) 389-7336", ProfileURL: "https://wyoleg.gov/Legislators/2025/H/2121", Active: true},
	{Name: "Trey Sherwood", Email: "Trey.Sherwood@wyoleg.gov", Party: "D", DistrictCode: "14", Chamber: models.ChamberHouse, Phone: "(307) 760-2722", ProfileURL: "https://wyoleg.gov/Legislators/2025/H/2072", Active: true},
	{Name: "Daniel Singh", Email: "Daniel.Singh@wyoleg.gov", Party: "R", DistrictCode: "61", Chamber: models.ChamberHouse, Phone: "(307) 274-3909", ProfileURL: "https://wyoleg.gov/Legislators/2025/H/2116", Active: true},
	{Name: "Scott Smith", Email: "Scott.Smith@wyoleg.gov", Party: "R", DistrictCode: "05", Chamber: models.ChamberHouse, Phone: "(307) 575-3742", ProfileURL: "https://wyoleg.gov/Legislators/2025/H/2093", Active: true},
	{Name: "Liz Storer", Email: "Liz.Storer@wyoleg.gov", Party: "D", DistrictCode: "23", Chamber: models.ChamberHouse, Phone: "(307) 421-4711", ProfileURL: "https://wyoleg.gov/Legislators/2025/H/2100", Active: true},
	{Name: "Tomi Strock", Email: "Tomi.Strock@wyoleg.gov", Party: "R", DistrictCode: "06", Chamber: models.ChamberHouse, Phone: "(307) 359-1120", ProfileURL: "https://wyoleg.gov/Legislators/2025/H/2094", Active: true},
	{Name: "Clarence Styvar", Email: "Clarence.Styvar@wyoleg.gov", Party: "R", DistrictCode: "12", Chamber: models.ChamberHouse, Phone: "(307) 631-2566", ProfileURL: "https://wyoleg.gov/Legislators/2025/H/2051", Active: true},
	{Name: "Reuben Tarver", Email: "Reuben.Tarver@wyoleg.gov", Party: "R", DistrictCode: "52", Chamber: models.ChamberHouse, Phone: "(307) 689-6275", ProfileURL: "https://wyoleg.gov/Legislators/2025/H/2112", Active: true},
	{Name: "Pam Thayer", Email: "Pam.Thayer@wyoleg.gov", Party: "R", DistrictCode: "15", Chamber: models.ChamberHouse, Phone: "(307) 321-5624", ProfileURL: "https://wyoleg.gov/Legislators/2025/H/2119", Active: true},
	{Name: "Art Washut", Email: "Art.Washut@wyoleg.gov", Party: "R", DistrictCode: "36", Chamber: models.ChamberHouse, Phone: "(307) 251-4725", ProfileURL: "https://wyoleg.gov/Legislators/2025/H/2058", Active: true},
	{Name: "Jacob Wasserburger", Email: "Jacob.Wasserburger@wyoleg.gov", Party: "R", DistrictCode: "11", Chamber: models.ChamberHouse, Phone: "(307) 286-7153", ProfileURL: "https://wyoleg.gov/Legislators/2025/H/2139", Active: true},
	{Name: "Joe Webb", Email: "Joe.Webb@wyoleg.gov", Party: "R", DistrictCode: "19", Chamber: models.ChamberHouse, Phone: "(307) 747-3282", ProfileURL: "https://wyoleg.gov/Legislators/2025/H/2120", Active: true},
	{Name: "Nina Webber", Email: "Nina.Webber@wyoleg.gov", Party: "R", DistrictCode: "24", Chamber: models.ChamberHouse, Phone: "(307) 921-8593", ProfileURL: "https://wyoleg.gov/Legislators/2025/H/2123", Active: true},
	{Name: "Robert Wharff", Email: "Robert.Wharff@wyoleg.gov", Party: "R", DistrictCode: "49", Chamber: models.ChamberHouse, Phone: "(307) 799-8944", ProfileURL: "https://wyoleg.gov/Legislators/2025/H/2082", Active: true},
	{Name: "JD Williams", Email: "jd.williams@wyoleg.gov", Party: "R", DistrictCode: "02", Chamber: models.ChamberHouse, Phone: "(307) 340-6006", ProfileURL: "https://wyoleg.gov/Legislators/2025/H/2087", Active: true},
	{Name: "John Winter", Email: "John.Winter@wyoleg.gov", Party: "R", DistrictCode: "28", Chamber: models.ChamberHouse, Phone: "(307) 690-0185", ProfileURL: "https://wyoleg.gov/Legislators/2025/H/2056", Active: true},
	{Name: "Cody Wylie", Email: "Cody.Wylie@wyoleg.gov", Party: "R", DistrictCode: "39", Chamber: models.ChamberHouse, Phone: "(307) 371-3283", ProfileURL: "https://wyoleg.gov/Legislators/2025/H/2107", Active: true},
	{Name: "Mike Yin", Email: "Mike.Yin@wyoleg.gov", Party: "D", DistrictCode: "16", Chamber: models.ChamberHouse, Phone: "(307) 201-9897", ProfileURL: "https://wyoleg.gov/Legislators/2025/H/2054", Active: true},
}
