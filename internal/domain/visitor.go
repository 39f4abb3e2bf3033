package domain

const visitorSchemaText = `
Table: visitor_details

Columns:
- id INTEGER PRIMARY KEY AUTOINCREMENT (auto-generated, use for uniqueness)
- vis_srno BIGINT (original visitor serial number)
- vis_entry_srno BIGINT (entry serial number)
- vis_name TEXT (visitor full name)
- vis_firstname TEXT (visitor first name)
- vis_middlename TEXT (visitor middle name)
- vis_lastname TEXT (visitor last name)
- vis_age INTEGER (visitor age)
- vis_gender VARCHAR(20) (visitor gender)
- vis_dob DATE (visitor date of birth)
- vis_doa DATE (visitor date of anniversary)
- vis_designation TEXT (visitor designation)
- vis_profession TEXT (visitor profession)
- vis_contact_no VARCHAR(20) (visitor contact number)
- vis_added_mobno VARCHAR(20) (mobile number of person who added this entry)
- vis_houseno VARCHAR(50) (house number)
- vis_address TEXT (full address)
- vis_voterno VARCHAR(50) (voter ID number, e.g., BJN3116621)
- vis_voter_status VARCHAR(10) (Y/N - whether visitor is a voter)
- vis_votersl INTEGER (voter serial number)
- vis_page_no INTEGER (page number in voter list)
- vis_tomeet INTEGER (person ID the visitor came to meet)
- vis_reason INTEGER (reason code for visit)
- vis_reason_num INTEGER (numeric reason identifier)
- vis_work_details TEXT (detailed work description)
- vis_assign_work TEXT (assigned work details)
- vis_inward_letter_no VARCHAR(50) (inward letter number)
- vis_entry_type VARCHAR(50) (type of entry, e.g., VISITOR)
- vis_work_status VARCHAR(50) (work status: Complete, Pending, etc.)
- vis_work_priority VARCHAR(20) (priority: LOW, MEDIUM, HIGH)
- vis_date_clean DATE (cleaned/standardized visit date)
- work_details_clean TEXT (cleaned work details)
- reason_category VARCHAR(100) (categorized reason, e.g., Personal/Meeting/Greetings)
- vis_added_by VARCHAR(100) (name of person who added the entry)
- vis_added_role VARCHAR(50) (role of person who added: GUEST, ADMIN, etc.)
- vis_added_datetime TIMESTAMP (when the entry was added)
- vis_reason_threshold INTEGER (threshold for reason escalation)
- vis_sla_status VARCHAR(50) (SLA status: Within SLA, Breached, etc.)
- vis_etc_datetime TIMESTAMP (estimated time of completion)
- vis_state_id INTEGER (state identifier)
- vis_ac_no INTEGER (assembly constituency number - visitor's)
- vis_booth_no INTEGER (booth number - visitor's)
- vis_work_acno INTEGER (AC number for assigned work)
- vis_work_wardmasid INTEGER (ward master ID for work assignment)
- user_location_id INTEGER (user location identifier)
- mp_seat_id INTEGER (MP seat identifier)
- old_sr INTEGER (old serial number for migration)
- booth_mas_id INTEGER (booth master ID)
- state_id INTEGER (state ID reference)
- mp_seat_id_hier INTEGER (MP seat hierarchy ID)
- ac_no INTEGER (assembly constituency number - reference)
- booth_no INTEGER (booth number - reference)
- booth_name TEXT (booth name, e.g., "2- Umrvada-2")
- ward_mas_id INTEGER (ward master ID)
- shaktikendra_mas_id INTEGER (shakti kendra master ID)
- ward_id INTEGER (ward identifier)
- shaktikendra_name TEXT (shakti kendra name)
- assembly_name TEXT (assembly constituency name, e.g., "163-Limbayat")
- assembly_incharge TEXT (name of assembly incharge)

Key Information:
- vis_work_status values: Complete, Pending, In Progress, etc.
- vis_voter_status: Y (Yes, is a voter), N (No, not a voter)
- vis_entry_type: VISITOR (visitor entry)
- Dates: vis_date_clean is the primary visit date field
- AC numbers (ac_no, vis_ac_no, vis_work_acno): Assembly Constituency identifiers
- Booth numbers identify voting booths within constituencies
- Ward and Shaktikendra are administrative divisions
`

var visitorColumns = []string{
	"id", "vis_srno", "vis_entry_srno", "vis_name", "vis_firstname", "vis_middlename",
	"vis_lastname", "vis_age", "vis_gender", "vis_dob", "vis_doa", "vis_designation",
	"vis_profession", "vis_contact_no", "vis_added_mobno", "vis_houseno", "vis_address",
	"vis_voterno", "vis_voter_status", "vis_votersl", "vis_page_no", "vis_tomeet",
	"vis_reason", "vis_reason_num", "vis_work_details", "vis_assign_work",
	"vis_inward_letter_no", "vis_entry_type", "vis_work_status", "vis_work_priority",
	"vis_date_clean", "work_details_clean", "reason_category", "vis_added_by",
	"vis_added_role", "vis_added_datetime", "vis_reason_threshold", "vis_sla_status",
	"vis_etc_datetime", "vis_state_id", "vis_ac_no", "vis_booth_no", "vis_work_acno",
	"vis_work_wardmasid", "user_location_id", "mp_seat_id", "old_sr", "booth_mas_id",
	"state_id", "mp_seat_id_hier", "ac_no", "booth_no", "booth_name", "ward_mas_id",
	"shaktikendra_mas_id", "ward_id", "shaktikendra_name", "assembly_name",
	"assembly_incharge",
}

const visitorPlannerPrompt = `You are a query planner for a visitor management system.
When the user asks how many unique visitors came, the plan must count unique mobile numbers (vis_contact_no), never the total row count. (very important)
When the user asks about reasons, the plan must always include the reason_category column for grouping or filtering. (critical)
Schema:
` + visitorSchemaText + `
Rules:
Hierarchy is first assembly then ward then shaktikendra then booth. (very important)
- Use ONLY the schema above
- Do NOT write SQL
- Return ONLY valid JSON
- No explanations
- Understand visitor management terminology:
  * "visitors" = people who visited
  * "completed work" = vis_work_status = 'Complete'
  * "pending work" = vis_work_status = 'Pending'
  * "booth" refers to voting booth locations
  * "AC" or "constituency" refers to assembly constituencies
  * "ward" and "shaktikendra" are administrative divisions

Output format:
{
  "table": "visitor_details",
  "filters": {},
  "metrics": [],
  "group_by": [],
  "order_by": [],
  "limit": null
}

Examples:
Q: "How many visitors came last month?"
{
  "table": "visitor_details",
  "filters": {"vis_date_clean": "last_month"},
  "metrics": ["COUNT(*)"],
  "group_by": [],
  "order_by": []
}

Q: "Show top 5 booths by visitor count"
{
  "table": "visitor_details",
  "filters": {},
  "metrics": ["booth_name", "COUNT(*) as visitor_count"],
  "group_by": ["booth_name"],
  "order_by": ["visitor_count DESC"],
  "limit": 5
}`

const visitorSynthesizerPrompt = `You generate SQLite SELECT queries for a visitor management system.

Schema:
` + visitorSchemaText + `
Rules:
If the user specifies a booth name, use:
LOWER(booth_name) LIKE LOWER('%text%')
- Use ONLY the schema
- No SELECT *
- Read-only queries only
- Return ONLY valid SQL with a semicolon at the end
- Do NOT include markdown formatting
- Do NOT include explanations
- Return a COMPLETE SQL query
- Use proper date handling with vis_date_clean
- Handle NULL values appropriately
- Use LOWER(column) LIKE LOWER('%text%') for case-insensitive search
- Prefer id columns over display names for filtering and grouping

Common patterns:
- Count visitors: SELECT COUNT(*) FROM visitor_details
- Group by booth: GROUP BY booth_name
- Filter by status: WHERE vis_work_status = 'Complete'
- Filter by date: WHERE vis_date_clean BETWEEN '2024-01-01' AND '2024-12-31'
- Filter by AC: WHERE ac_no = 163
- Recent visitors: ORDER BY vis_added_datetime DESC

Example format:
SELECT booth_name, COUNT(*) as visitor_count
FROM visitor_details
WHERE vis_work_status = 'Complete'
GROUP BY booth_name
ORDER BY visitor_count DESC
LIMIT 10;`

const visitorComposerRules = `- If the question is about reasons or reason categories, answer from the reason category values in the data, but never surface the literal column name; avoid mentioning it in brackets or capital letters.
- When the user greets, instantly greet back politely. For example, if the user says hi, say hello how can I help you with a smile emoji at the end. (important)
- You are a constituency assistant who explains visitor data clearly and accurately.
- Answer like an assistant, not by reading the data back verbatim.
- Never say what data or columns you received; just state what is in them naturally. (important)
- Always give the answer in a well structured way with clear sections
- If the answer involves multiple points, use bullet points or numbered lists
- Use the actual data from the results and include relevant numbers
- If there are many rows, summarize the key insights
- Do NOT invent or assume data not in the results
- For visitor data, provide context (e.g., "163 visitors" instead of just "163")
Example formats:
- For counts: "There are 163 visitors from booth 2-Umrvada-2"
- For lists: "The top 3 booths by visitor count are..."
- For dates: "In October 2019, there were..."`

var visitorDescriptor = func() *Descriptor {
	d := newDescriptor(KeyVisitor, "visitor_details", visitorColumns)
	d.SchemaText = visitorSchemaText
	d.PlannerPrompt = visitorPlannerPrompt
	d.SynthesizerPrompt = visitorSynthesizerPrompt
	d.ComposerRules = visitorComposerRules
	d.Examples = []string{
		"How many visitors came in total?",
		"Show me visitors by work status",
		"Which booth has the most visitors?",
		"List visitors from AC 163",
		"Show pending work items",
	}

	return d
}()
