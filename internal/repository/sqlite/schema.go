package sqlite

// Table and column names match databases created by earlier releases, so
// existing honor.db files keep working.

const (
	// CreateFactionTable must run before CreateCharacterTable, which
	// references it
	CreateFactionTable Statement = `
	CREATE TABLE Faccion (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		nom VARCHAR(15) NOT NULL,
		resum VARCHAR(500)
	)`

	CreateCharacterTable Statement = `
	CREATE TABLE Personaje (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		nom VARCHAR(15) NOT NULL,
		atac REAL,
		defensa REAL,
		idFaccion INTEGER,
		FOREIGN KEY (idFaccion) REFERENCES Faccion(id)
	)`

	InsertFaction SQL = `INSERT INTO Faccion (nom, resum) VALUES (?, ?)`

	InsertCharacter SQL = `INSERT INTO Personaje (nom, atac, defensa, idFaccion) VALUES (?, ?, ?, ?)`
)

// Tables lists the tables created by the schema, in creation order
var Tables = []string{"Faccion", "Personaje"}
