package store

// Column names follow the historical spreadsheets so existing files keep
// loading unchanged.
var (
	Sales = Collection{
		Name: "Vendas",
		Columns: []string{
			"ID", "Data", "Cliente", "Descrição", "Tipo", "Valor",
			"Pagamento", "Documento", "NF", "Recebido", "Comentário",
		},
	}

	Expenses = Collection{
		Name: "Despesas",
		Columns: []string{
			"ID", "Data", "Despesa", "Valor", "Tipo", "Pagamento",
			"Parcelas", "NF", "Pago", "Comentário",
		},
	}

	Clients = Collection{
		Name:    "Clientes",
		Columns: []string{"Nome", "CNPJ", "Endereço", "Telefone", "Cadastro"},
	}

	Schedule = Collection{
		Name:    "Agenda",
		Columns: []string{"Dia", "Horário", "Cliente"},
	}
)

// All lists every collection the application persists, in mirror order.
func All() []Collection {
	return []Collection{Sales, Expenses, Clients, Schedule}
}

// ByName resolves a collection by its sheet name.
func ByName(name string) (Collection, bool) {
	for _, c := range All() {
		if c.Name == name {
			return c, true
		}
	}
	return Collection{}, false
}
